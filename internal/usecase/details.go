package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/rushrr/courier/internal/adapter/shopify"
	domainErrors "github.com/rushrr/courier/internal/domain/errors"
	"github.com/rushrr/courier/internal/domain/model"
	"github.com/rushrr/courier/internal/domain/repository"
)

// DetailsUseCase looks up normalized Shopify orders for display.
type DetailsUseCase struct {
	sessions    repository.SessionRepository
	credentials repository.CredentialStore
	shopify     shopify.Client
	fetcher     *OrderFetcher
	runner      BatchRunner
	logger      *slog.Logger
}

// NewDetailsUseCase constructs DetailsUseCase.
func NewDetailsUseCase(
	sessions repository.SessionRepository,
	credentials repository.CredentialStore,
	client shopify.Client,
	fetcher *OrderFetcher,
	runner BatchRunner,
	logger *slog.Logger,
) *DetailsUseCase {
	return &DetailsUseCase{
		sessions:    sessions,
		credentials: credentials,
		shopify:     client,
		fetcher:     fetcher,
		runner:      runner,
		logger:      logger,
	}
}

// OrderDetails returns one order, preferring the GraphQL API.
func (u *DetailsUseCase) OrderDetails(ctx context.Context, shop, id string) (*model.OrderDetails, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domainErrors.ErrInvalidRequest
	}
	session, err := requireSession(ctx, u.sessions, shop)
	if err != nil {
		return nil, err
	}

	canonical, _, err := u.fetcher.FetchPreferring(ctx, session, id, model.FetchSourceGraphQL)
	if err != nil {
		return nil, err
	}
	return &model.OrderDetails{Order: canonical, OrderID: canonical.ID, CustomerName: canonical.CustomerName}, nil
}

// BulkDetails returns every fetchable order with product details attached to
// its line items. Orders that cannot be fetched are left out.
func (u *DetailsUseCase) BulkDetails(ctx context.Context, shop string, ids []string) (*model.BulkDetails, error) {
	if ids == nil {
		return nil, domainErrors.ErrInvalidRequest
	}
	if _, err := requireToken(ctx, u.credentials, shop); err != nil {
		return nil, err
	}
	session, err := requireSession(ctx, u.sessions, shop)
	if err != nil {
		return nil, err
	}

	fetched := make([]*model.CanonicalOrder, len(ids))
	if err := u.runner.Run(ctx, len(ids), func(ctx context.Context, i int) error {
		canonical, _, err := u.fetcher.Fetch(ctx, session, ids[i])
		if err != nil {
			u.logger.Warn("order left out of bulk details",
				slog.String("order_id", ids[i]),
				slog.String("error", err.Error()),
			)
			return nil
		}
		fetched[i] = canonical
		return nil
	}); err != nil {
		return nil, err
	}

	products, err := u.products(ctx, session, fetched)
	if err != nil {
		return nil, err
	}

	out := &model.BulkDetails{ShopifyStoreURL: session.Shop, Orders: []model.DetailedOrder{}}
	for _, canonical := range fetched {
		if canonical == nil {
			continue
		}
		detailed := model.DetailedOrder{
			CanonicalOrder: canonical,
			LineItems:      make([]model.DetailedLineItem, 0, len(canonical.LineItems)),
		}
		for _, item := range canonical.LineItems {
			detailed.LineItems = append(detailed.LineItems, model.DetailedLineItem{
				LineItem:       item,
				ProductDetails: products[item.ProductID],
			})
		}
		out.Orders = append(out.Orders, detailed)
	}
	return out, nil
}

// products fetches every distinct product referenced by the orders once.
func (u *DetailsUseCase) products(ctx context.Context, session model.ShopSession, orders []*model.CanonicalOrder) (map[string]*model.ProductDetails, error) {
	var ids []string
	seen := make(map[string]struct{})
	for _, canonical := range orders {
		if canonical == nil {
			continue
		}
		for _, item := range canonical.LineItems {
			if item.ProductID == "" {
				continue
			}
			if _, ok := seen[item.ProductID]; ok {
				continue
			}
			seen[item.ProductID] = struct{}{}
			ids = append(ids, item.ProductID)
		}
	}

	var mu sync.Mutex
	details := make(map[string]*model.ProductDetails, len(ids))
	err := u.runner.Run(ctx, len(ids), func(ctx context.Context, i int) error {
		product, err := u.shopify.FetchProduct(ctx, session, ids[i])
		if err != nil {
			u.logger.Warn("product details unavailable",
				slog.String("product_id", ids[i]),
				slog.String("error", err.Error()),
			)
			return nil
		}
		mu.Lock()
		details[ids[i]] = productDetails(product)
		mu.Unlock()
		return nil
	})
	return details, err
}

func productDetails(p *shopify.Product) *model.ProductDetails {
	details := &model.ProductDetails{
		Title:  p.Title,
		Vendor: p.Vendor,
		Handle: p.Handle,
		Tags:   p.Tags,
	}
	if p.Image != nil && p.Image.Src != "" {
		src := p.Image.Src
		details.Image = &src
	}
	return details
}
