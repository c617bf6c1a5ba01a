package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	metrics "github.com/hashicorp/go-metrics"

	"github.com/xcv-protocol/xcv-go/modules/core/client/types"
)

// CreateClient allocates the next client identifier and records the initial
// accepted height of the new client. The next client sequence is incremented
// only after the client state has been written, so identifiers are allocated
// gaplessly in creation order.
func (k *Keeper) CreateClient(ctx sdk.Context, initialHeight types.Height) (uint64, error) {
	clientID := k.GetNextClientSequence(ctx)
	if k.HasClient(ctx, clientID) {
		panic(errorsmod.Wrapf(types.ErrClientExists, "next client sequence %d is already allocated", clientID))
	}

	record := types.NewHeightRecord(initialHeight, uint64(ctx.BlockHeight()), uint64(ctx.BlockTime().UnixNano()))
	k.SetHeightRecord(ctx, clientID, record)
	k.setLatestHeight(ctx, clientID, initialHeight)
	k.SetNextClientSequence(ctx, clientID+1)

	k.Logger(ctx).Info("client created at height", "client-id", types.FormatClientIdentifier(clientID), "height", initialHeight.String())

	defer telemetry.IncrCounterWithLabels(
		[]string{"xcv", "client", "create"},
		1,
		[]metrics.Label{telemetry.NewLabel(types.LabelClientID, types.FormatClientIdentifier(clientID))},
	)

	emitCreateClientEvent(ctx, clientID, initialHeight)

	if err := k.Hooks().OnClientCreated(ctx, clientID, initialHeight); err != nil {
		return 0, err
	}

	return clientID, nil
}

// UpdateClient records a new accepted height for an existing client. The
// header height must strictly progress the client past its latest accepted
// height, headers that rewind or replay a height are rejected without
// mutating any state.
func (k *Keeper) UpdateClient(ctx sdk.Context, clientID uint64, height types.Height) error {
	latestHeight, found := k.GetLatestHeight(ctx, clientID)
	if !found {
		return errorsmod.Wrapf(types.ErrClientNotFound, "cannot update client %s", types.FormatClientIdentifier(clientID))
	}

	if !height.GT(latestHeight) {
		return errorsmod.Wrapf(types.ErrInvalidHeader, "header height %s is not greater than latest height %s of client %s", height, latestHeight, types.FormatClientIdentifier(clientID))
	}

	record := types.NewHeightRecord(height, uint64(ctx.BlockHeight()), uint64(ctx.BlockTime().UnixNano()))
	k.SetHeightRecord(ctx, clientID, record)
	k.setLatestHeight(ctx, clientID, height)

	k.Logger(ctx).Info("client state updated", "client-id", types.FormatClientIdentifier(clientID), "height", height.String())

	defer telemetry.IncrCounterWithLabels(
		[]string{"xcv", "client", "update"},
		1,
		[]metrics.Label{telemetry.NewLabel(types.LabelClientID, types.FormatClientIdentifier(clientID))},
	)

	emitUpdateClientEvent(ctx, clientID, height)

	return k.Hooks().OnClientUpdated(ctx, clientID, height)
}
