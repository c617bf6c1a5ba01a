package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/xcv-protocol/xcv-go/modules/core/client/types"
)

// InitGenesis initializes the client registry state from a provided genesis
// state. It panics if the genesis state is invalid.
func (k *Keeper) InitGenesis(ctx sdk.Context, gs types.GenesisState) {
	if err := gs.Validate(); err != nil {
		panic(fmt.Errorf("invalid client genesis state: %w", err))
	}

	for _, client := range gs.Clients {
		k.SetClient(ctx, client)
	}

	k.SetNextClientSequence(ctx, gs.NextClientSequence)
}

// ExportGenesis returns the client registry state as genesis state.
func (k *Keeper) ExportGenesis(ctx sdk.Context) types.GenesisState {
	return types.NewGenesisState(k.GetAllClients(ctx), k.GetNextClientSequence(ctx))
}
