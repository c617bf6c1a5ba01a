package types

import (
	"context"

	"github.com/cosmos/cosmos-sdk/types/query"
)

// QueryServer defines the read side query surface of the client registry. It
// mirrors the gRPC query service conventions of the SDK, requests and
// responses are addressed with formatted client identifiers.
type QueryServer interface {
	// Client queries a single client by its identifier.
	Client(ctx context.Context, req *QueryClientRequest) (*QueryClientResponse, error)

	// Clients queries all clients with pagination.
	Clients(ctx context.Context, req *QueryClientsRequest) (*QueryClientsResponse, error)

	// ClientHeights queries the accepted heights of a client with pagination.
	ClientHeights(ctx context.Context, req *QueryClientHeightsRequest) (*QueryClientHeightsResponse, error)

	// NextClientSequence queries the sequence the next created client will be
	// allocated.
	NextClientSequence(ctx context.Context, req *QueryNextClientSequenceRequest) (*QueryNextClientSequenceResponse, error)
}

// QueryClientRequest is the request type for the Query/Client method
type QueryClientRequest struct {
	// client unique identifier in `client-{N}` format
	ClientID string `json:"client_id"`
}

// QueryClientResponse is the response type for the Query/Client method
type QueryClientResponse struct {
	Client Client `json:"client"`
}

// QueryClientsRequest is the request type for the Query/Clients method
type QueryClientsRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

// QueryClientsResponse is the response type for the Query/Clients method
type QueryClientsResponse struct {
	// clients associated with the registry, sorted by allocated identifier
	Clients    []Client            `json:"clients"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

// QueryClientHeightsRequest is the request type for the Query/ClientHeights
// method
type QueryClientHeightsRequest struct {
	// client unique identifier in `client-{N}` format
	ClientID   string             `json:"client_id"`
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

// QueryClientHeightsResponse is the response type for the Query/ClientHeights
// method
type QueryClientHeightsResponse struct {
	// accepted height records in increasing height order
	Heights    []HeightRecord      `json:"heights"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

// QueryNextClientSequenceRequest is the request type for the
// Query/NextClientSequence method
type QueryNextClientSequenceRequest struct{}

// QueryNextClientSequenceResponse is the response type for the
// Query/NextClientSequence method
type QueryNextClientSequenceResponse struct {
	NextClientSequence uint64 `json:"next_client_sequence"`
}
