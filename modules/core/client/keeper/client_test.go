package keeper_test

import (
	"github.com/xcv-protocol/xcv-go/modules/core/client/types"
	xcvtesting "github.com/xcv-protocol/xcv-go/testing"
)

func (suite *KeeperTestSuite) TestCreateClient() {
	testCases := []struct {
		name          string
		initialHeight types.Height
	}{
		{"initial height zero", types.ZeroHeight()},
		{"initial height non zero", types.NewHeight(5)},
		{"initial height large", types.NewHeight(1 << 40)},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest() // reset

			clientID, err := suite.keeper.CreateClient(suite.ctx, tc.initialHeight)
			suite.Require().NoError(err)
			suite.Require().Equal(xcvtesting.FirstClientID, clientID)

			suite.Require().True(suite.keeper.HasClient(suite.ctx, clientID))
			suite.Require().True(suite.keeper.HasHeight(suite.ctx, clientID, tc.initialHeight))

			latestHeight, found := suite.keeper.GetLatestHeight(suite.ctx, clientID)
			suite.Require().True(found)
			suite.Require().Equal(tc.initialHeight, latestHeight)

			record, found := suite.keeper.GetHeightRecord(suite.ctx, clientID, tc.initialHeight)
			suite.Require().True(found)
			suite.Require().Equal(uint64(suite.ctx.BlockHeight()), record.ProcessedHeight)
			suite.Require().Equal(uint64(suite.ctx.BlockTime().UnixNano()), record.ProcessedTime)

			suite.Require().Equal(clientID+1, suite.keeper.GetNextClientSequence(suite.ctx))
		})
	}
}

func (suite *KeeperTestSuite) TestCreateClientSequentialIdentifiers() {
	for expClientID := uint64(0); expClientID < 3; expClientID++ {
		clientID, err := suite.keeper.CreateClient(suite.ctx, types.NewHeight(10*expClientID))
		suite.Require().NoError(err)
		suite.Require().Equal(expClientID, clientID)
	}

	suite.Require().Equal(uint64(3), suite.keeper.GetNextClientSequence(suite.ctx))
}

func (suite *KeeperTestSuite) TestCreateClientPanicsOnAllocatedSequence() {
	// seed a client under the identifier the sequence will allocate next
	suite.keeper.SetClient(suite.ctx, types.NewClient(xcvtesting.FirstClientID, types.NewHeight(5), []types.HeightRecord{
		types.NewHeightRecord(types.NewHeight(5), 1, 10),
	}))

	defer func() {
		r := recover()
		suite.Require().NotNil(r)

		err, ok := r.(error)
		suite.Require().True(ok)
		suite.Require().ErrorIs(err, types.ErrClientExists)
	}()

	suite.keeper.CreateClient(suite.ctx, types.NewHeight(7)) //nolint:errcheck // the call must panic
}

func (suite *KeeperTestSuite) TestUpdateClient() {
	var (
		clientID uint64
		height   types.Height
	)

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"successful update",
			func() {},
			nil,
		},
		{
			"successful update by a single height",
			func() {
				height = types.NewHeight(6)
			},
			nil,
		},
		{
			"successful update after previous updates",
			func() {
				suite.Require().NoError(suite.keeper.UpdateClient(suite.ctx, clientID, types.NewHeight(10)))
				suite.Require().NoError(suite.keeper.UpdateClient(suite.ctx, clientID, types.NewHeight(20)))
				height = types.NewHeight(21)
			},
			nil,
		},
		{
			"client not found",
			func() {
				clientID = xcvtesting.InvalidClientID
			},
			types.ErrClientNotFound,
		},
		{
			"header height equal to latest height",
			func() {
				height = types.NewHeight(5)
			},
			types.ErrInvalidHeader,
		},
		{
			"header height below latest height",
			func() {
				height = types.NewHeight(4)
			},
			types.ErrInvalidHeader,
		},
		{
			"header height zero on a progressed client",
			func() {
				height = types.ZeroHeight()
			},
			types.ErrInvalidHeader,
		},
		{
			"header height between accepted heights",
			func() {
				suite.Require().NoError(suite.keeper.UpdateClient(suite.ctx, clientID, types.NewHeight(20)))
				height = types.NewHeight(15)
			},
			types.ErrInvalidHeader,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest() // reset

			var err error
			clientID, err = suite.keeper.CreateClient(suite.ctx, types.NewHeight(5))
			suite.Require().NoError(err)
			height = types.NewHeight(10)

			tc.malleate()

			expClients := suite.keeper.GetAllClients(suite.ctx)
			expSequence := suite.keeper.GetNextClientSequence(suite.ctx)

			err = suite.keeper.UpdateClient(suite.ctx, clientID, height)

			if tc.expErr == nil {
				suite.Require().NoError(err)

				latestHeight, found := suite.keeper.GetLatestHeight(suite.ctx, clientID)
				suite.Require().True(found)
				suite.Require().Equal(height, latestHeight)
				suite.Require().True(suite.keeper.HasHeight(suite.ctx, clientID, height))

				record, found := suite.keeper.GetHeightRecord(suite.ctx, clientID, height)
				suite.Require().True(found)
				suite.Require().Equal(uint64(suite.ctx.BlockHeight()), record.ProcessedHeight)
				suite.Require().Equal(uint64(suite.ctx.BlockTime().UnixNano()), record.ProcessedTime)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)

				// a rejected header must leave the registry untouched
				suite.Require().Equal(expClients, suite.keeper.GetAllClients(suite.ctx))
				suite.Require().Equal(expSequence, suite.keeper.GetNextClientSequence(suite.ctx))
			}
		})
	}
}

func (suite *KeeperTestSuite) TestUpdateClientHeightSetGrowsMonotonically() {
	clientID, err := suite.keeper.CreateClient(suite.ctx, types.NewHeight(5))
	suite.Require().NoError(err)

	for _, height := range []types.Height{10, 20, 21} {
		suite.Require().NoError(suite.keeper.UpdateClient(suite.ctx, clientID, height))
	}

	// a rejected height must not remove previously accepted heights
	err = suite.keeper.UpdateClient(suite.ctx, clientID, types.NewHeight(15))
	suite.Require().ErrorIs(err, types.ErrInvalidHeader)

	expHeights := []types.Height{5, 10, 20, 21}
	suite.Require().Equal(expHeights, suite.keeper.GetClientHeights(suite.ctx, clientID))
	suite.Require().False(suite.keeper.HasHeight(suite.ctx, clientID, types.NewHeight(15)))

	latestHeight, found := suite.keeper.GetLatestHeight(suite.ctx, clientID)
	suite.Require().True(found)
	suite.Require().Equal(types.NewHeight(21), latestHeight)
}

func (suite *KeeperTestSuite) TestUpdateClientIsolation() {
	clientA, err := suite.keeper.CreateClient(suite.ctx, types.NewHeight(5))
	suite.Require().NoError(err)

	clientB, err := suite.keeper.CreateClient(suite.ctx, types.NewHeight(100))
	suite.Require().NoError(err)

	// each client progresses at its own cadence
	suite.Require().NoError(suite.keeper.UpdateClient(suite.ctx, clientA, types.NewHeight(7)))
	suite.Require().NoError(suite.keeper.UpdateClient(suite.ctx, clientB, types.NewHeight(101)))
	suite.Require().NoError(suite.keeper.UpdateClient(suite.ctx, clientA, types.NewHeight(9)))

	suite.Require().Equal([]types.Height{5, 7, 9}, suite.keeper.GetClientHeights(suite.ctx, clientA))
	suite.Require().Equal([]types.Height{100, 101}, suite.keeper.GetClientHeights(suite.ctx, clientB))

	// heights accepted by one client do not leak into another
	suite.Require().False(suite.keeper.HasHeight(suite.ctx, clientA, types.NewHeight(100)))
	suite.Require().False(suite.keeper.HasHeight(suite.ctx, clientB, types.NewHeight(7)))

	// a height below the latest of client B is still acceptable to client A
	suite.Require().NoError(suite.keeper.UpdateClient(suite.ctx, clientA, types.NewHeight(50)))
	suite.Require().ErrorIs(suite.keeper.UpdateClient(suite.ctx, clientB, types.NewHeight(50)), types.ErrInvalidHeader)
}
