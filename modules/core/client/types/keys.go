package types

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/xcv-protocol/xcv-go/modules/core/host"
)

const (
	// SubModuleName defines the client registry submodule name
	SubModuleName = "client"

	// KeyNextClientSequence is the key used to store the next client sequence in
	// the keeper
	KeyNextClientSequence = "nextClientSequence"

	// ClientIDPrefix is the prefix shared by all registry allocated client
	// identifiers
	ClientIDPrefix = "client"
)

// IsClientIDFormat checks if a client identifier is in the format required for
// parsing client identifiers. The identifier must be in the form: `client-{N}`
var IsClientIDFormat = regexp.MustCompile(`^client-[0-9]{1,20}$`).MatchString

// FormatClientIdentifier returns the client identifier for the provided
// client sequence in the format: `client-{N}`
func FormatClientIdentifier(sequence uint64) string {
	return fmt.Sprintf("%s-%d", ClientIDPrefix, sequence)
}

// IsValidClientID checks if the clientID is valid and can be parsed back into
// a client sequence.
func IsValidClientID(clientID string) bool {
	_, err := ParseClientIdentifier(clientID)
	return err == nil
}

// ParseClientIdentifier parses the client sequence from the provided client
// identifier. The identifier must be in the form: `client-{N}`
func ParseClientIdentifier(clientID string) (uint64, error) {
	if !IsClientIDFormat(clientID) {
		return 0, errorsmod.Wrapf(host.ErrInvalidID, "invalid client identifier %s is not in format: `client-{N}`", clientID)
	}

	splitStr := strings.Split(clientID, "-")
	sequence, err := strconv.ParseUint(splitStr[len(splitStr)-1], 10, 64)
	if err != nil {
		return 0, errorsmod.Wrap(err, "failed to parse client identifier sequence")
	}

	return sequence, nil
}

// HeightKey returns the store key under which a height record is stored,
// relative to the prefixed store of the owning client. Heights are encoded
// big endian so that store iteration visits them in increasing numeric order.
func HeightKey(height Height) []byte {
	return append([]byte(host.KeyHeightsPrefix+"/"), sdk.Uint64ToBigEndian(uint64(height))...)
}
