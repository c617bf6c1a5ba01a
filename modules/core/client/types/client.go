package types

import (
	"errors"
	"fmt"
)

// HeightRecord pairs an accepted height with the local block height and time
// observed when the registry accepted it. ProcessedTime is in unix
// nanoseconds.
type HeightRecord struct {
	Height          Height `json:"height"`
	ProcessedHeight uint64 `json:"processed_height"`
	ProcessedTime   uint64 `json:"processed_time"`
}

// NewHeightRecord creates a new HeightRecord instance
func NewHeightRecord(height Height, processedHeight, processedTime uint64) HeightRecord {
	return HeightRecord{
		Height:          height,
		ProcessedHeight: processedHeight,
		ProcessedTime:   processedTime,
	}
}

// Client is the registry view of a single tracked counterparty chain: the
// grow only set of heights accepted so far and the latest among them.
type Client struct {
	ClientID     uint64         `json:"client_id"`
	LatestHeight Height         `json:"latest_height"`
	Heights      []HeightRecord `json:"heights"`
}

// NewClient creates a new Client instance
func NewClient(clientID uint64, latestHeight Height, heights []HeightRecord) Client {
	return Client{
		ClientID:     clientID,
		LatestHeight: latestHeight,
		Heights:      heights,
	}
}

// Validate performs basic validation of the client fields. Heights must be
// non empty, strictly increasing and consistent with the latest height.
func (c Client) Validate() error {
	if len(c.Heights) == 0 {
		return errors.New("client must have at least one accepted height")
	}

	for i, record := range c.Heights {
		if i > 0 && !record.Height.GT(c.Heights[i-1].Height) {
			return fmt.Errorf("heights must be strictly increasing: height %s at index %d", record.Height, i)
		}
	}

	if greatest := c.Heights[len(c.Heights)-1].Height; !c.LatestHeight.EQ(greatest) {
		return fmt.Errorf("latest height %s does not match greatest accepted height %s", c.LatestHeight, greatest)
	}

	return nil
}
