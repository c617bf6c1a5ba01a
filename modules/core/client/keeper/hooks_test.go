package keeper_test

import (
	"errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/xcv-protocol/xcv-go/modules/core/client/types"
)

// recordingHooks captures the hook calls made by the keeper
type recordingHooks struct {
	created []uint64
	updated []uint64
	err     error
}

var _ types.Hooks = (*recordingHooks)(nil)

func (h *recordingHooks) OnClientCreated(_ sdk.Context, clientID uint64, _ types.Height) error {
	h.created = append(h.created, clientID)
	return h.err
}

func (h *recordingHooks) OnClientUpdated(_ sdk.Context, clientID uint64, _ types.Height) error {
	h.updated = append(h.updated, clientID)
	return h.err
}

func (suite *KeeperTestSuite) TestHooks() {
	hooks := &recordingHooks{}
	suite.keeper.SetHooks(hooks)

	clientID, err := suite.keeper.CreateClient(suite.ctx, types.NewHeight(5))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.keeper.UpdateClient(suite.ctx, clientID, types.NewHeight(9)))

	suite.Require().Equal([]uint64{clientID}, hooks.created)
	suite.Require().Equal([]uint64{clientID}, hooks.updated)

	// rejected updates do not invoke hooks
	err = suite.keeper.UpdateClient(suite.ctx, clientID, types.NewHeight(9))
	suite.Require().ErrorIs(err, types.ErrInvalidHeader)
	suite.Require().Len(hooks.updated, 1)
}

func (suite *KeeperTestSuite) TestHookErrorsPropagate() {
	expErr := errors.New("rejected by hook")
	suite.keeper.SetHooks(&recordingHooks{err: expErr})

	_, err := suite.keeper.CreateClient(suite.ctx, types.NewHeight(5))
	suite.Require().ErrorIs(err, expErr)

	// hooks run after the state write, the transaction rollback discards it
	err = suite.keeper.UpdateClient(suite.ctx, 0, types.NewHeight(9))
	suite.Require().ErrorIs(err, expErr)
}

func (suite *KeeperTestSuite) TestMultiHooks() {
	first, second := &recordingHooks{}, &recordingHooks{}
	suite.keeper.SetHooks(types.NewMultiHooks(first, second))

	clientID, err := suite.keeper.CreateClient(suite.ctx, types.NewHeight(5))
	suite.Require().NoError(err)

	suite.Require().Equal([]uint64{clientID}, first.created)
	suite.Require().Equal([]uint64{clientID}, second.created)
}

func (suite *KeeperTestSuite) TestSetHooksPanicsWhenSetTwice() {
	suite.keeper.SetHooks(&recordingHooks{})

	suite.Require().Panics(func() {
		suite.keeper.SetHooks(&recordingHooks{})
	})
}
