package host

import (
	errorsmod "cosmossdk.io/errors"
)

// SubModuleName defines the common state paths and identifiers submodule
const SubModuleName = "host"

// ErrInvalidID is returned when a client identifier string does not conform
// to the expected format.
var ErrInvalidID = errorsmod.Register(SubModuleName, 2, "invalid identifier")
