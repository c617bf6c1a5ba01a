package host

import "fmt"

// KeyClientStorePrefix defines the KVStore key prefix for client registry state
var KeyClientStorePrefix = []byte("clients")

const (
	// KeyLatestHeight is the key under which the latest accepted height of a
	// client is stored, relative to that client's store prefix. Presence of
	// this key is what makes a client exist.
	KeyLatestHeight = "latestHeight"

	// KeyHeightsPrefix is the key prefix under which the individual accepted
	// heights of a client are stored, relative to that client's store prefix
	KeyHeightsPrefix = "heights"
)

// FullClientPath returns the full path of a specific client path in the format:
// "clients/{clientID}/{path}" as a string.
func FullClientPath(clientID, path string) string {
	return fmt.Sprintf("%s/%s/%s", KeyClientStorePrefix, clientID, path)
}

// FullClientKey returns the full path of specific client path in the format:
// "clients/{clientID}/{path}" as a byte array.
func FullClientKey(clientID string, path []byte) []byte {
	return []byte(FullClientPath(clientID, string(path)))
}

// PrefixedClientStorePath returns a key path which can be used for prefixed
// key store iteration. The prefix may be a client identifier or any valid key
// prefix which may be concatenated with the client store constant.
func PrefixedClientStorePath(prefix []byte) string {
	return fmt.Sprintf("%s/%s", KeyClientStorePrefix, prefix)
}

// PrefixedClientStoreKey returns a key which can be used for prefixed key
// store iteration. The prefix may be a client identifier or any valid key
// prefix which may be concatenated with the client store constant.
func PrefixedClientStoreKey(prefix []byte) []byte {
	return []byte(PrefixedClientStorePath(prefix))
}

// FullLatestHeightKey takes a client identifier and returns a key under which
// to store the latest accepted height of that client.
func FullLatestHeightKey(clientID string) []byte {
	return FullClientKey(clientID, LatestHeightKey())
}

// LatestHeightKey returns the store key under which the latest accepted
// height is stored, relative to the prefixed store of the owning client.
func LatestHeightKey() []byte {
	return []byte(KeyLatestHeight)
}
