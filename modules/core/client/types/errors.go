package types

import (
	errorsmod "cosmossdk.io/errors"
)

// client registry sentinel errors
var (
	ErrClientExists   = errorsmod.Register(SubModuleName, 2, "client already exists")
	ErrClientNotFound = errorsmod.Register(SubModuleName, 3, "client not found")
	ErrInvalidHeader  = errorsmod.Register(SubModuleName, 4, "invalid client header")
	ErrInvalidHeight  = errorsmod.Register(SubModuleName, 5, "invalid height")
)
