package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/rushrr/courier/internal/config"
	"github.com/rushrr/courier/internal/domain/model"
	"github.com/rushrr/courier/internal/domain/order"
	"github.com/rushrr/courier/internal/test"
	"github.com/rushrr/courier/internal/worker"
)

const testShop = "demo.myshopify.com"

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func testSession() model.ShopSession {
	return model.ShopSession{Shop: testShop, AccessToken: "shpat_test"}
}

func flatOrder(id, number, first string) *order.FlatOrder {
	return &order.FlatOrder{
		ID:          order.FlexString(id),
		OrderNumber: order.FlexString(number),
		Name:        "#" + number,
		Email:       "buyer@example.com",
		TotalPrice:  "1500.00",
		Currency:    "PKR",
		Customer:    &order.FlatCustomer{FirstName: first},
		BillingAddress: &order.FlatAddress{
			City: "Lahore",
		},
		ShippingAddress: &order.FlatAddress{
			Address1: "12 Mall Road",
			City:     "Lahore",
			Phone:    "03001234567",
		},
		LineItems: []order.FlatLineItem{
			{ID: "11", Title: "Kurta", Quantity: 1, ProductID: "501"},
		},
	}
}

type fixture struct {
	sessions    *test.SessionRepositoryStub
	credentials *test.CredentialStoreStub
	shopify     *test.ShopifyClientStub
	logistics   *test.LogisticsClientStub
	metrics     *test.MetricsStub
	fetcher     *OrderFetcher
	runner      *worker.BatchRunner
}

func newFixture() *fixture {
	f := &fixture{
		sessions:    test.NewSessionRepositoryStub(testSession()),
		credentials: test.NewCredentialStoreStub(testShop, "rushrr-token"),
		shopify: &test.ShopifyClientStub{
			Flat:  map[string]*order.FlatOrder{},
			Graph: map[string]*order.GraphOrder{},
		},
		logistics: &test.LogisticsClientStub{},
		metrics:   &test.MetricsStub{},
		runner:    worker.NewBatchRunner(1, testLogger()),
	}
	f.fetcher = NewOrderFetcher(f.shopify, &config.Config{}, f.metrics, testLogger())
	return f
}

func (f *fixture) process() *ProcessOrdersUseCase {
	return NewProcessOrdersUseCase(f.sessions, f.credentials, f.fetcher, f.logistics, f.runner, f.metrics, testLogger())
}

func newPooledRunner(t *testing.T, workers int) *worker.BatchRunner {
	t.Helper()
	runner := worker.NewBatchRunner(workers, testLogger())
	runner.Start(context.Background())
	t.Cleanup(runner.Stop)
	return runner
}
