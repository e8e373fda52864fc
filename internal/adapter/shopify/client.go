package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"golang.org/x/time/rate"

	domainErrors "github.com/rushrr/courier/internal/domain/errors"
	"github.com/rushrr/courier/internal/domain/model"
	"github.com/rushrr/courier/internal/domain/order"
)

const (
	accessTokenHeader = "X-Shopify-Access-Token"
	orderGIDPrefix    = "gid://shopify/Order/"
	defaultAPIVersion = "2024-01"
	defaultTimeout    = 10 * time.Second
)

const orderQuery = `query getOrder($id: ID!) {
  order(id: $id) {
    id
    name
    email
    phone
    totalPriceSet { shopMoney { amount currencyCode } }
    customer { firstName lastName email phone }
    shippingAddress { firstName lastName address1 city country zip phone }
    billingAddress { firstName lastName address1 city country zip phone }
    lineItems(first: 100) {
      edges {
        node {
          id
          title
          quantity
          variant { id title sku price }
          product { id title vendor }
        }
      }
    }
  }
}`

// StatusError is a non-success response from the Shopify admin API.
type StatusError struct {
	Status     int
	StatusText string
	Body       []byte
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("shopify error: %d %s", e.Status, e.StatusText)
}

// Unwrap maps credential and lookup failures onto domain errors.
func (e *StatusError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domainErrors.ErrAuthRequired
	case http.StatusNotFound:
		return domainErrors.ErrNotFound
	default:
		return nil
	}
}

// Product is the subset of a REST product used to enrich line items.
type Product struct {
	ID     order.FlexString `json:"id"`
	Title  string           `json:"title"`
	Vendor string           `json:"vendor"`
	Handle string           `json:"handle"`
	Tags   string           `json:"tags"`
	Image  *ProductImage    `json:"image"`
}

// ProductImage is the primary product image.
type ProductImage struct {
	Src string `json:"src"`
}

// Client exposes the Shopify admin API calls used by the service.
type Client interface {
	FetchREST(ctx context.Context, session model.ShopSession, id string) (*order.FlatOrder, error)
	FetchGraphQL(ctx context.Context, session model.ShopSession, id string) (*order.GraphOrder, error)
	FetchProduct(ctx context.Context, session model.ShopSession, id string) (*Product, error)
}

// Options configures HTTPClient.
type Options struct {
	APIVersion string
	// BaseURL replaces https://{shop} when set.
	BaseURL       string
	Timeout       time.Duration
	RatePerSecond int
}

// HTTPClient implements Client over the admin REST and GraphQL endpoints.
type HTTPClient struct {
	baseURL    *url.URL
	apiVersion string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewHTTPClient creates a Shopify client sharing one request budget across shops.
func NewHTTPClient(opts Options, logger *slog.Logger) (*HTTPClient, error) {
	c := &HTTPClient{
		apiVersion: opts.APIVersion,
		logger:     logger,
		httpClient: &http.Client{Timeout: opts.Timeout},
	}
	if c.apiVersion == "" {
		c.apiVersion = defaultAPIVersion
	}
	if opts.Timeout <= 0 {
		c.httpClient.Timeout = defaultTimeout
	}
	if opts.RatePerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.RatePerSecond), opts.RatePerSecond)
	} else {
		c.limiter = rate.NewLimiter(rate.Inf, 0)
	}
	if opts.BaseURL != "" {
		parsed, err := url.Parse(opts.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("parse shopify url: %w", err)
		}
		if !parsed.IsAbs() {
			return nil, fmt.Errorf("shopify url must be absolute")
		}
		c.baseURL = parsed
	}
	return c, nil
}

// FetchREST loads an order through GET /admin/api/{version}/orders/{id}.json.
func (c *HTTPClient) FetchREST(ctx context.Context, session model.ShopSession, id string) (*order.FlatOrder, error) {
	endpoint, err := c.endpoint(session.Shop, "orders", id+".json")
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, session, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var data struct {
		Order *order.FlatOrder `json:"order"`
	}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decode order %s: %w", id, err)
	}
	if data.Order == nil {
		return nil, fmt.Errorf("order %s %w", id, domainErrors.ErrNotFound)
	}
	return data.Order, nil
}

// FetchGraphQL loads an order through the admin GraphQL endpoint.
func (c *HTTPClient) FetchGraphQL(ctx context.Context, session model.ShopSession, id string) (*order.GraphOrder, error) {
	endpoint, err := c.endpoint(session.Shop, "graphql.json")
	if err != nil {
		return nil, err
	}

	gid := id
	if !strings.HasPrefix(gid, "gid://") {
		gid = orderGIDPrefix + id
	}
	payload, err := json.Marshal(map[string]any{
		"query":     orderQuery,
		"variables": map[string]string{"id": gid},
	})
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, session, http.MethodPost, endpoint, payload)
	if err != nil {
		return nil, err
	}

	var data struct {
		Data struct {
			Order *order.GraphOrder `json:"order"`
		} `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decode graphql order %s: %w", id, err)
	}
	if len(data.Errors) > 0 {
		messages := make([]string, 0, len(data.Errors))
		for _, e := range data.Errors {
			messages = append(messages, e.Message)
		}
		return nil, fmt.Errorf("graphql error: %s", strings.Join(messages, "; "))
	}
	if data.Data.Order == nil {
		return nil, fmt.Errorf("order %s not in GraphQL response: %w", id, domainErrors.ErrNotFound)
	}
	return data.Data.Order, nil
}

// FetchProduct loads a product through GET /admin/api/{version}/products/{id}.json.
func (c *HTTPClient) FetchProduct(ctx context.Context, session model.ShopSession, id string) (*Product, error) {
	endpoint, err := c.endpoint(session.Shop, "products", id+".json")
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, session, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var data struct {
		Product *Product `json:"product"`
	}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decode product %s: %w", id, err)
	}
	if data.Product == nil {
		return nil, fmt.Errorf("product %s %w", id, domainErrors.ErrNotFound)
	}
	return data.Product, nil
}

func (c *HTTPClient) endpoint(shop string, parts ...string) (*url.URL, error) {
	shop = strings.TrimSpace(shop)
	if shop == "" || strings.ContainsAny(shop, "/@?#") {
		return nil, fmt.Errorf("invalid shop domain %q", shop)
	}

	var endpoint url.URL
	if c.baseURL != nil {
		endpoint = *c.baseURL
	} else {
		endpoint = url.URL{Scheme: "https", Host: shop}
	}
	elems := append([]string{endpoint.Path, "/admin/api", c.apiVersion}, parts...)
	endpoint.Path = path.Join(elems...)
	return &endpoint, nil
}

func (c *HTTPClient) do(ctx context.Context, session model.ShopSession, method string, endpoint *url.URL, payload []byte) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set(accessTokenHeader, session.AccessToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("shopify request failed",
			slog.String("shop", session.Shop),
			slog.String("path", endpoint.Path),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return nil, &StatusError{
			Status:     resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Body:       body,
			URL:        endpoint.String(),
		}
	}
	return body, nil
}
