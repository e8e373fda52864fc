package model

import (
	"encoding/json"
	"fmt"
)

// OrderSuccess describes an order accepted by the logistics backend.
type OrderSuccess struct {
	OrderID          string
	OrderNumber      string
	CustomerName     string
	NameSource       NameSource
	FetchSource      FetchSource
	ExternalResponse json.RawMessage
}

// FailureDetails captures the collaborator response behind a failure, when any.
type FailureDetails struct {
	Status     int
	StatusText string
	Data       json.RawMessage
	URL        string
}

// OrderFailure describes an order that could not be processed.
type OrderFailure struct {
	OrderID string
	Error   string
	Details *FailureDetails
}

// BatchSummary counts batch outcomes.
type BatchSummary struct {
	Total      int
	Successful int
	Failed     int
}

// BatchResult accumulates per-order outcomes of a batch.
type BatchResult struct {
	Successful []OrderSuccess
	Failed     []OrderFailure
	Summary    BatchSummary
}

// Message renders the human readable batch summary.
func (r BatchResult) Message() string {
	return fmt.Sprintf("Processed %d orders: %d successful, %d failed", r.Summary.Total, r.Summary.Successful, r.Summary.Failed)
}

// AnySucceeded reports whether at least one order was accepted.
func (r BatchResult) AnySucceeded() bool {
	return r.Summary.Successful > 0
}
