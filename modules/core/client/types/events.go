package types

import (
	"fmt"

	"github.com/xcv-protocol/xcv-go/modules/core/exported"
)

// client registry event types and attribute keys
const (
	AttributeKeyClientID        = "client_id"
	AttributeKeyConsensusHeight = "consensus_height"
)

var (
	EventTypeCreateClient = "create_client"
	EventTypeUpdateClient = "update_client"

	AttributeValueCategory = fmt.Sprintf("%s_%s", exported.ModuleName, SubModuleName)
)
