package xcvtesting

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/xcv-protocol/xcv-go/modules/core/client/keeper"
	"github.com/xcv-protocol/xcv-go/modules/core/exported"
)

// ChainID is the chain identifier applied to test contexts
const ChainID = "testchain-1"

// DefaultTime is the block time applied to test contexts
var DefaultTime = time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)

// NewTestKeeper returns a client registry keeper mounted on a fresh in memory
// commit multi store, together with a context for it. The registry state is
// untouched, callers are expected to initialize it from a genesis state.
func NewTestKeeper(t *testing.T) (*keeper.Keeper, sdk.Context) {
	db := dbm.NewMemDB()
	cms := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())

	storeKey := storetypes.NewKVStoreKey(exported.StoreKey)
	cms.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, cms.LoadLatestVersion())

	header := cmtproto.Header{
		ChainID: ChainID,
		Height:  1,
		Time:    DefaultTime,
	}

	return keeper.NewKeeper(storeKey), sdk.NewContext(cms, header, false, log.NewNopLogger())
}
