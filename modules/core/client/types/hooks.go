package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Hooks defines an interface for reacting to client lifecycle transitions.
// Hooks run after the transition has been written to state, an error returned
// by a hook aborts the transaction.
type Hooks interface {
	// OnClientCreated is called after a client has been created with its
	// initial height.
	OnClientCreated(ctx sdk.Context, clientID uint64, height Height) error

	// OnClientUpdated is called after a client has accepted a new height.
	OnClientUpdated(ctx sdk.Context, clientID uint64, height Height) error
}

// MultiHooks combines multiple client hooks, all hook functions are run in
// array sequence
type MultiHooks []Hooks

// NewMultiHooks combines multiple client hooks into a single Hooks instance
func NewMultiHooks(hooks ...Hooks) MultiHooks {
	return hooks
}

var _ Hooks = MultiHooks{}

// OnClientCreated implements the Hooks interface
func (h MultiHooks) OnClientCreated(ctx sdk.Context, clientID uint64, height Height) error {
	for i := range h {
		if err := h[i].OnClientCreated(ctx, clientID, height); err != nil {
			return err
		}
	}
	return nil
}

// OnClientUpdated implements the Hooks interface
func (h MultiHooks) OnClientUpdated(ctx sdk.Context, clientID uint64, height Height) error {
	for i := range h {
		if err := h[i].OnClientUpdated(ctx, clientID, height); err != nil {
			return err
		}
	}
	return nil
}
