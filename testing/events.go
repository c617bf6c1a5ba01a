package xcvtesting

import (
	abci "github.com/cometbft/cometbft/abci/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	testifysuite "github.com/stretchr/testify/suite"
)

// AssertEvents asserts that the expected events were emitted. Events are
// matched on their type, every expected attribute must be present on the
// matched event.
func AssertEvents(suite *testifysuite.Suite, expected sdk.Events, actual sdk.Events) {
	for _, expectedEvent := range expected {
		found := false
		for _, actualEvent := range actual {
			if actualEvent.Type != expectedEvent.Type {
				continue
			}

			if containsAttributes(actualEvent.Attributes, expectedEvent.Attributes) {
				found = true
				break
			}
		}

		suite.Require().True(found, "event %s with the expected attributes was not emitted", expectedEvent.Type)
	}
}

func containsAttributes(actual, expected []abci.EventAttribute) bool {
	for _, expectedAttr := range expected {
		hasAttribute := false
		for _, attr := range actual {
			if attr.Key == expectedAttr.Key && attr.Value == expectedAttr.Value {
				hasAttribute = true
				break
			}
		}

		if !hasAttribute {
			return false
		}
	}

	return true
}
