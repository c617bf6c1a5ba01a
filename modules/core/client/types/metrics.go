package types

// Prometheus metric labels.
const (
	LabelClientID = "client-id"
)
