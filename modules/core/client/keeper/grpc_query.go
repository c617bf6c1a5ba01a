package keeper

import (
	"context"
	"sort"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/store/prefix"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/xcv-protocol/xcv-go/modules/core/client/types"
	"github.com/xcv-protocol/xcv-go/modules/core/host"
)

var _ types.QueryServer = (*queryServer)(nil)

// queryServer implements the client registry QueryServer interface. It embeds
// the client keeper to leverage store access while limiting the api of the
// client keeper.
type queryServer struct {
	*Keeper
}

// NewQueryServer returns a new QueryServer implementation backed by the
// provided keeper.
func NewQueryServer(k *Keeper) types.QueryServer {
	return &queryServer{
		Keeper: k,
	}
}

// Client implements the Query/Client method
func (q *queryServer) Client(goCtx context.Context, req *types.QueryClientRequest) (*types.QueryClientResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	clientID, err := types.ParseClientIdentifier(req.ClientID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	client, found := q.GetClient(ctx, clientID)
	if !found {
		return nil, status.Error(codes.NotFound, errorsmod.Wrap(types.ErrClientNotFound, req.ClientID).Error())
	}

	return &types.QueryClientResponse{Client: client}, nil
}

// Clients implements the Query/Clients method
func (q *queryServer) Clients(goCtx context.Context, req *types.QueryClientsRequest) (*types.QueryClientsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	var clients []types.Client
	store := prefix.NewStore(ctx.KVStore(q.storeKey), host.KeyClientStorePrefix)

	pageRes, err := query.FilteredPaginate(store, req.Pagination, func(key, value []byte, accumulate bool) (bool, error) {
		// filter any height records stored under the client prefix
		keySplit := strings.Split(string(key), "/")
		if keySplit[len(keySplit)-1] != host.KeyLatestHeight {
			return false, nil
		}

		clientID, err := types.ParseClientIdentifier(keySplit[1])
		if err != nil {
			return false, nil
		}

		if accumulate {
			client, found := q.GetClient(ctx, clientID)
			if !found {
				return false, nil
			}

			clients = append(clients, client)
		}

		return true, nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(clients, func(i, j int) bool {
		return clients[i].ClientID < clients[j].ClientID
	})

	return &types.QueryClientsResponse{
		Clients:    clients,
		Pagination: pageRes,
	}, nil
}

// ClientHeights implements the Query/ClientHeights method
func (q *queryServer) ClientHeights(goCtx context.Context, req *types.QueryClientHeightsRequest) (*types.QueryClientHeightsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	clientID, err := types.ParseClientIdentifier(req.ClientID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if !q.HasClient(ctx, clientID) {
		return nil, status.Error(codes.NotFound, errorsmod.Wrap(types.ErrClientNotFound, req.ClientID).Error())
	}

	var heights []types.HeightRecord
	store := prefix.NewStore(q.ClientStore(ctx, clientID), []byte(host.KeyHeightsPrefix+"/"))

	pageRes, err := query.Paginate(store, req.Pagination, func(key, value []byte) error {
		height := types.NewHeight(sdk.BigEndianToUint64(key))
		heights = append(heights, parseHeightRecordValue(height, value))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &types.QueryClientHeightsResponse{
		Heights:    heights,
		Pagination: pageRes,
	}, nil
}

// NextClientSequence implements the Query/NextClientSequence method
func (q *queryServer) NextClientSequence(goCtx context.Context, req *types.QueryNextClientSequenceRequest) (*types.QueryNextClientSequenceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	sequence := q.GetNextClientSequence(ctx)

	return &types.QueryNextClientSequenceResponse{NextClientSequence: sequence}, nil
}
