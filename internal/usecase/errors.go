package usecase

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rushrr/courier/internal/adapter/logistics"
	"github.com/rushrr/courier/internal/adapter/shopify"
	domainErrors "github.com/rushrr/courier/internal/domain/errors"
	"github.com/rushrr/courier/internal/domain/model"
)

// FetchError reports an order neither Shopify API could deliver.
type FetchError struct {
	OrderID string
	REST    error
	GraphQL error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("Failed to fetch order %s: REST: %v, GraphQL: %v", e.OrderID, e.REST, e.GraphQL)
}

func (e *FetchError) Unwrap() []error {
	errs := []error{domainErrors.ErrUpstreamFetchFailed}
	for _, err := range []error{e.REST, e.GraphQL} {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// failureDetails extracts the collaborator response behind err, if there is one.
func failureDetails(err error) *model.FailureDetails {
	var rejected *logistics.RejectedError
	if errors.As(err, &rejected) {
		return &model.FailureDetails{
			Status:     rejected.Status,
			StatusText: rejected.StatusText,
			Data:       jsonBody(rejected.Body),
			URL:        rejected.URL,
		}
	}
	var status *shopify.StatusError
	if errors.As(err, &status) {
		return &model.FailureDetails{
			Status:     status.Status,
			StatusText: status.StatusText,
			Data:       jsonBody(status.Body),
			URL:        status.URL,
		}
	}
	return nil
}

func jsonBody(body []byte) json.RawMessage {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	encoded, _ := json.Marshal(string(body))
	return encoded
}
