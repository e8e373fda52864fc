package usecase

import (
	"context"
	"log/slog"

	"github.com/rushrr/courier/internal/adapter/shopify"
	"github.com/rushrr/courier/internal/config"
	"github.com/rushrr/courier/internal/domain/model"
	"github.com/rushrr/courier/internal/domain/order"
)

// OrderFetcher loads a Shopify order through REST or GraphQL and normalizes it.
type OrderFetcher struct {
	shopify shopify.Client
	opts    order.Options
	metrics Metrics
	logger  *slog.Logger
}

// NewOrderFetcher constructs OrderFetcher with configured currency defaults.
func NewOrderFetcher(client shopify.Client, cfg *config.Config, metrics Metrics, logger *slog.Logger) *OrderFetcher {
	return &OrderFetcher{
		shopify: client,
		opts:    order.Options{FlatCurrency: cfg.FlatDefaultCurrency, GraphCurrency: cfg.GraphDefaultCurrency},
		metrics: metrics,
		logger:  logger,
	}
}

// Options returns the normalization defaults in use.
func (f *OrderFetcher) Options() order.Options {
	return f.opts
}

// Fetch tries REST first and falls back to GraphQL.
func (f *OrderFetcher) Fetch(ctx context.Context, session model.ShopSession, id string) (*model.CanonicalOrder, model.FetchSource, error) {
	return f.FetchPreferring(ctx, session, id, model.FetchSourceREST)
}

// FetchPreferring tries the preferred API first. A failed fetch or a malformed
// record moves on to the other API.
func (f *OrderFetcher) FetchPreferring(ctx context.Context, session model.ShopSession, id string, first model.FetchSource) (*model.CanonicalOrder, model.FetchSource, error) {
	var restErr, graphErr error

	attempts := []model.FetchSource{model.FetchSourceREST, model.FetchSourceGraphQL}
	if first == model.FetchSourceGraphQL {
		attempts = []model.FetchSource{model.FetchSourceGraphQL, model.FetchSourceREST}
	}

	for _, source := range attempts {
		var (
			canonical *model.CanonicalOrder
			err       error
		)
		switch source {
		case model.FetchSourceREST:
			canonical, err = f.fetchREST(ctx, session, id)
			restErr = err
		case model.FetchSourceGraphQL:
			canonical, err = f.fetchGraphQL(ctx, session, id)
			graphErr = err
		}
		if err == nil {
			f.metrics.OrderFetched(source)
			return canonical, source, nil
		}
		f.logger.Warn("order fetch attempt failed",
			slog.String("order_id", id),
			slog.String("fetch_source", string(source)),
			slog.String("error", err.Error()),
		)
		if ctx.Err() != nil {
			break
		}
	}

	f.metrics.OrderFetched("")
	return nil, "", &FetchError{OrderID: id, REST: restErr, GraphQL: graphErr}
}

func (f *OrderFetcher) fetchREST(ctx context.Context, session model.ShopSession, id string) (*model.CanonicalOrder, error) {
	flat, err := f.shopify.FetchREST(ctx, session, id)
	if err != nil {
		return nil, err
	}
	return order.Normalize(flat, id, f.opts)
}

func (f *OrderFetcher) fetchGraphQL(ctx context.Context, session model.ShopSession, id string) (*model.CanonicalOrder, error) {
	graph, err := f.shopify.FetchGraphQL(ctx, session, id)
	if err != nil {
		return nil, err
	}
	return order.Normalize(graph, id, f.opts)
}
