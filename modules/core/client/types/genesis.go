package types

import (
	"fmt"
)

// GenesisState defines the client registry genesis state
type GenesisState struct {
	Clients            []Client `json:"clients"`
	NextClientSequence uint64   `json:"next_client_sequence"`
}

// NewGenesisState creates a GenesisState instance.
func NewGenesisState(clients []Client, nextClientSequence uint64) GenesisState {
	return GenesisState{
		Clients:            clients,
		NextClientSequence: nextClientSequence,
	}
}

// DefaultGenesisState returns the registry's default genesis state. No
// clients exist and the first created client is allocated sequence 0.
func DefaultGenesisState() GenesisState {
	return GenesisState{
		Clients:            []Client{},
		NextClientSequence: 0,
	}
}

// Validate performs basic genesis state validation returning an error upon
// any failure.
func (gs GenesisState) Validate() error {
	seenClients := make(map[uint64]bool)
	for _, client := range gs.Clients {
		if seenClients[client.ClientID] {
			return fmt.Errorf("duplicate client identifier %s", FormatClientIdentifier(client.ClientID))
		}

		if err := client.Validate(); err != nil {
			return fmt.Errorf("invalid client %s: %w", FormatClientIdentifier(client.ClientID), err)
		}

		if client.ClientID >= gs.NextClientSequence {
			return fmt.Errorf("next client sequence %d must be greater than allocated identifier %s", gs.NextClientSequence, FormatClientIdentifier(client.ClientID))
		}

		seenClients[client.ClientID] = true
	}

	return nil
}
