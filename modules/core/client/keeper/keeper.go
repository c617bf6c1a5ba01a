package keeper

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"cosmossdk.io/log"
	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/xcv-protocol/xcv-go/modules/core/client/types"
	"github.com/xcv-protocol/xcv-go/modules/core/exported"
	"github.com/xcv-protocol/xcv-go/modules/core/host"
)

// Keeper represents a type that grants read and write permissions to any
// client state information
type Keeper struct {
	storeKey storetypes.StoreKey
	hooks    types.Hooks
}

// NewKeeper creates a new client registry Keeper instance
func NewKeeper(key storetypes.StoreKey) *Keeper {
	return &Keeper{
		storeKey: key,
	}
}

// SetHooks sets the client lifecycle hooks. It panics if the hooks are
// already set.
func (k *Keeper) SetHooks(hooks types.Hooks) {
	if k.hooks != nil {
		panic("cannot set client hooks twice")
	}

	k.hooks = hooks
}

// Hooks returns the registered client hooks
func (k *Keeper) Hooks() types.Hooks {
	if k.hooks == nil {
		// return a no-op implementation if no hooks are set
		return types.MultiHooks{}
	}

	return k.hooks
}

// Logger returns a module-specific logger.
func (k *Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+exported.ModuleName+"/"+types.SubModuleName)
}

// ClientStore returns an isolated prefix store for each client so they can
// read/write in separate namespaces without being able to read/write other
// client's data
func (k *Keeper) ClientStore(ctx sdk.Context, clientID uint64) storetypes.KVStore {
	// the trailing separator keeps client-1 out of the client-10 namespace
	clientPrefix := host.PrefixedClientStoreKey([]byte(types.FormatClientIdentifier(clientID) + "/"))
	return prefix.NewStore(ctx.KVStore(k.storeKey), clientPrefix)
}

// GetNextClientSequence gets the next client sequence from the store.
func (k *Keeper) GetNextClientSequence(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get([]byte(types.KeyNextClientSequence))
	if len(bz) == 0 {
		panic(errors.New("next client sequence is nil"))
	}

	return sdk.BigEndianToUint64(bz)
}

// SetNextClientSequence sets the next client sequence to the store.
func (k *Keeper) SetNextClientSequence(ctx sdk.Context, sequence uint64) {
	store := ctx.KVStore(k.storeKey)
	bz := sdk.Uint64ToBigEndian(sequence)
	store.Set([]byte(types.KeyNextClientSequence), bz)
}

// HasClient returns true if a client with the provided identifier has been
// created. Existence is keyed on the latest height entry of the client.
func (k *Keeper) HasClient(ctx sdk.Context, clientID uint64) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(host.FullLatestHeightKey(types.FormatClientIdentifier(clientID)))
}

// GetLatestHeight returns the latest accepted height of the client with the
// provided identifier. The returned boolean is false if the client does not
// exist.
func (k *Keeper) GetLatestHeight(ctx sdk.Context, clientID uint64) (types.Height, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(host.FullLatestHeightKey(types.FormatClientIdentifier(clientID)))
	if len(bz) == 0 {
		return types.ZeroHeight(), false
	}

	return types.NewHeight(sdk.BigEndianToUint64(bz)), true
}

// setLatestHeight sets the latest accepted height of the client with the
// provided identifier.
func (k *Keeper) setLatestHeight(ctx sdk.Context, clientID uint64, height types.Height) {
	store := ctx.KVStore(k.storeKey)
	store.Set(host.FullLatestHeightKey(types.FormatClientIdentifier(clientID)), sdk.Uint64ToBigEndian(uint64(height)))
}

// HasHeight returns true if the client with the provided identifier has
// accepted the provided height.
func (k *Keeper) HasHeight(ctx sdk.Context, clientID uint64, height types.Height) bool {
	return k.ClientStore(ctx, clientID).Has(types.HeightKey(height))
}

// GetHeightRecord returns the record stored by the client with the provided
// identifier for the provided accepted height.
func (k *Keeper) GetHeightRecord(ctx sdk.Context, clientID uint64, height types.Height) (types.HeightRecord, bool) {
	bz := k.ClientStore(ctx, clientID).Get(types.HeightKey(height))
	if len(bz) == 0 {
		return types.HeightRecord{}, false
	}

	return parseHeightRecordValue(height, bz), true
}

// SetHeightRecord stores the provided height record for the client with the
// provided identifier.
func (k *Keeper) SetHeightRecord(ctx sdk.Context, clientID uint64, record types.HeightRecord) {
	k.ClientStore(ctx, clientID).Set(types.HeightKey(record.Height), heightRecordValue(record))
}

// GetClientHeights returns all heights accepted by the client with the
// provided identifier in increasing order.
func (k *Keeper) GetClientHeights(ctx sdk.Context, clientID uint64) []types.Height {
	var heights []types.Height
	for _, record := range k.getHeightRecords(ctx, clientID) {
		heights = append(heights, record.Height)
	}

	return heights
}

// GetClient returns the full registry view of the client with the provided
// identifier, including all accepted height records.
func (k *Keeper) GetClient(ctx sdk.Context, clientID uint64) (types.Client, bool) {
	latestHeight, found := k.GetLatestHeight(ctx, clientID)
	if !found {
		return types.Client{}, false
	}

	return types.NewClient(clientID, latestHeight, k.getHeightRecords(ctx, clientID)), true
}

// SetClient stores all state of the provided client. The caller is expected
// to have validated the client beforehand.
func (k *Keeper) SetClient(ctx sdk.Context, client types.Client) {
	for _, record := range client.Heights {
		k.SetHeightRecord(ctx, client.ClientID, record)
	}

	k.setLatestHeight(ctx, client.ClientID, client.LatestHeight)
}

// GetAllClients returns all created clients sorted by their allocated
// identifiers.
func (k *Keeper) GetAllClients(ctx sdk.Context) []types.Client {
	var clients []types.Client
	k.IterateClients(ctx, func(client types.Client) bool {
		clients = append(clients, client)
		return false
	})

	return clients
}

// IterateClients iterates over all created clients in identifier order and
// performs a callback function. The iteration stops when the callback
// returns true.
func (k *Keeper) IterateClients(ctx sdk.Context, cb func(client types.Client) bool) {
	for _, clientID := range k.getClientIDs(ctx) {
		client, found := k.GetClient(ctx, clientID)
		if !found {
			continue
		}

		if cb(client) {
			break
		}
	}
}

// getClientIDs returns the identifiers of all created clients in increasing
// order by iterating over the client store prefix. Clients are recognized by
// their latest height entry, height record entries are skipped.
func (k *Keeper) getClientIDs(ctx sdk.Context) []uint64 {
	store := ctx.KVStore(k.storeKey)
	iterator := storetypes.KVStorePrefixIterator(store, host.KeyClientStorePrefix)
	defer iterator.Close()

	var clientIDs []uint64
	for ; iterator.Valid(); iterator.Next() {
		keySplit := strings.Split(string(iterator.Key()), "/")
		if len(keySplit) != 3 || keySplit[2] != host.KeyLatestHeight {
			continue
		}

		clientID, err := types.ParseClientIdentifier(keySplit[1])
		if err != nil {
			panic(err)
		}

		clientIDs = append(clientIDs, clientID)
	}

	// lexicographic store order is not numeric order for formatted
	// identifiers, client-10 sorts before client-2
	slices.Sort(clientIDs)

	return clientIDs
}

// getHeightRecords returns all height records of the client with the
// provided identifier in increasing height order.
func (k *Keeper) getHeightRecords(ctx sdk.Context, clientID uint64) []types.HeightRecord {
	clientStore := k.ClientStore(ctx, clientID)
	iterator := storetypes.KVStorePrefixIterator(clientStore, []byte(host.KeyHeightsPrefix+"/"))
	defer iterator.Close()

	var records []types.HeightRecord
	for ; iterator.Valid(); iterator.Next() {
		heightBz := iterator.Key()[len(host.KeyHeightsPrefix)+1:]
		if len(heightBz) != 8 {
			panic(fmt.Errorf("height key has invalid length: expected 8, got %d", len(heightBz)))
		}

		height := types.NewHeight(sdk.BigEndianToUint64(heightBz))
		records = append(records, parseHeightRecordValue(height, iterator.Value()))
	}

	return records
}

// heightRecordValue encodes the local acceptance metadata of a height record
// as two fixed width big endian integers.
func heightRecordValue(record types.HeightRecord) []byte {
	return append(sdk.Uint64ToBigEndian(record.ProcessedHeight), sdk.Uint64ToBigEndian(record.ProcessedTime)...)
}

// parseHeightRecordValue decodes a stored height record value. It panics if
// the value is malformed since a corrupted client store cannot be recovered.
func parseHeightRecordValue(height types.Height, bz []byte) types.HeightRecord {
	if len(bz) != 16 {
		panic(fmt.Errorf("height record value has invalid length: expected 16, got %d", len(bz)))
	}

	return types.NewHeightRecord(height, sdk.BigEndianToUint64(bz[:8]), sdk.BigEndianToUint64(bz[8:]))
}
