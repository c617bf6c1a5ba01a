package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/xcv-protocol/xcv-go/modules/core/client/types"
	"github.com/xcv-protocol/xcv-go/modules/core/exported"
)

// RegisterInvariants registers all client registry invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k *Keeper) {
	ir.RegisterRoute(exported.ModuleName, "client-sequence",
		ClientSequenceInvariant(k))
	ir.RegisterRoute(exported.ModuleName, "client-heights",
		ClientHeightsInvariant(k))
}

// AllInvariants runs all invariants of the client registry.
func AllInvariants(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		msg, broken := ClientSequenceInvariant(k)(ctx)
		if broken {
			return msg, broken
		}

		return ClientHeightsInvariant(k)(ctx)
	}
}

// ClientSequenceInvariant checks that every allocated client identifier is
// below the next client sequence.
func ClientSequenceInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		nextSequence := k.GetNextClientSequence(ctx)

		var broken []uint64
		k.IterateClients(ctx, func(client types.Client) bool {
			if client.ClientID >= nextSequence {
				broken = append(broken, client.ClientID)
			}
			return false
		})

		return sdk.FormatInvariant(
			exported.ModuleName, "client sequence",
			fmt.Sprintf("found %d client(s) allocated at or above the next client sequence %d", len(broken), nextSequence),
		), len(broken) != 0
	}
}

// ClientHeightsInvariant checks that the height set of every client is
// strictly increasing and consistent with its latest height.
func ClientHeightsInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var brokenMsg string
		k.IterateClients(ctx, func(client types.Client) bool {
			if err := client.Validate(); err != nil {
				brokenMsg = err.Error()
				return true
			}
			return false
		})

		return sdk.FormatInvariant(
			exported.ModuleName, "client heights",
			fmt.Sprintf("client height sets must be strictly increasing and match the latest height: %s", brokenMsg),
		), brokenMsg != ""
	}
}
