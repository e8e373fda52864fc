package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rushrr/courier/internal/adapter/logistics"
	domainErrors "github.com/rushrr/courier/internal/domain/errors"
	"github.com/rushrr/courier/internal/domain/model"
	"github.com/rushrr/courier/internal/domain/repository"
	"github.com/rushrr/courier/internal/worker"
)

const skippedAuthMessage = "skipped: authentication required"

// ProcessOrdersUseCase sends Shopify orders to the logistics backend.
type ProcessOrdersUseCase struct {
	sessions    repository.SessionRepository
	credentials repository.CredentialStore
	fetcher     *OrderFetcher
	logistics   logistics.Client
	runner      BatchRunner
	metrics     Metrics
	logger      *slog.Logger
}

// NewProcessOrdersUseCase constructs ProcessOrdersUseCase.
func NewProcessOrdersUseCase(
	sessions repository.SessionRepository,
	credentials repository.CredentialStore,
	fetcher *OrderFetcher,
	client logistics.Client,
	runner BatchRunner,
	metrics Metrics,
	logger *slog.Logger,
) *ProcessOrdersUseCase {
	return &ProcessOrdersUseCase{
		sessions:    sessions,
		credentials: credentials,
		fetcher:     fetcher,
		logistics:   client,
		runner:      runner,
		metrics:     metrics,
		logger:      logger,
	}
}

type orderOutcome struct {
	done    bool
	success *model.OrderSuccess
	failure *model.OrderFailure
}

// Process fetches, normalizes and submits every order. Individual failures are
// collected in the result; only whole batch preconditions return an error.
func (u *ProcessOrdersUseCase) Process(ctx context.Context, shop string, ids []string) (*model.BatchResult, error) {
	if len(ids) == 0 {
		return nil, domainErrors.ErrInvalidRequest
	}
	token, err := requireToken(ctx, u.credentials, shop)
	if err != nil {
		return nil, err
	}
	session, err := requireSession(ctx, u.sessions, shop)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	outcomes := make([]orderOutcome, len(ids))

	runErr := u.runner.Run(ctx, len(ids), func(ctx context.Context, i int) error {
		outcome, stop := u.processOne(ctx, session, token, ids[i])
		outcomes[i] = outcome
		if stop {
			return worker.ErrStopBatch
		}
		return nil
	})

	skipped := skippedAuthMessage
	if runErr != nil && !errors.Is(runErr, worker.ErrStopBatch) {
		skipped = "skipped: " + runErr.Error()
	}

	result := &model.BatchResult{
		Successful: []model.OrderSuccess{},
		Failed:     []model.OrderFailure{},
	}
	for i, outcome := range outcomes {
		switch {
		case !outcome.done:
			u.metrics.OrderProcessed(false)
			result.Failed = append(result.Failed, model.OrderFailure{OrderID: ids[i], Error: skipped})
		case outcome.success != nil:
			result.Successful = append(result.Successful, *outcome.success)
		default:
			result.Failed = append(result.Failed, *outcome.failure)
		}
	}
	result.Summary = model.BatchSummary{
		Total:      len(ids),
		Successful: len(result.Successful),
		Failed:     len(result.Failed),
	}

	elapsed := time.Since(started)
	u.metrics.ObserveBatch(elapsed)
	u.logger.Info("order batch processed",
		slog.String("shop", shop),
		slog.Int("total", result.Summary.Total),
		slog.Int("successful", result.Summary.Successful),
		slog.Int("failed", result.Summary.Failed),
		slog.Duration("duration", elapsed),
	)

	return result, nil
}

func (u *ProcessOrdersUseCase) processOne(ctx context.Context, session model.ShopSession, token, id string) (orderOutcome, bool) {
	canonical, source, err := u.fetcher.Fetch(ctx, session, id)
	if err != nil {
		return u.fail(id, err.Error(), err), errors.Is(err, domainErrors.ErrAuthRequired)
	}
	u.metrics.CustomerNameResolved(canonical.NameSource)

	response, err := u.logistics.CreateOrder(ctx, token, session.Shop, canonical)
	u.metrics.Downstream("create_order", err)
	if err != nil {
		message := logistics.FriendlyMessage(err, canonical.OrderReferenceNumber)
		return u.fail(id, message, err), errors.Is(err, domainErrors.ErrAuthRequired)
	}

	u.metrics.OrderProcessed(true)
	u.logger.Info("order sent to logistics",
		slog.String("order_id", id),
		slog.String("name_source", string(canonical.NameSource)),
		slog.String("fetch_source", string(source)),
	)

	return orderOutcome{
		done: true,
		success: &model.OrderSuccess{
			OrderID:          id,
			OrderNumber:      canonical.OrderReferenceNumber,
			CustomerName:     canonical.CustomerName,
			NameSource:       canonical.NameSource,
			FetchSource:      source,
			ExternalResponse: response,
		},
	}, false
}

func (u *ProcessOrdersUseCase) fail(id, message string, err error) orderOutcome {
	u.metrics.OrderProcessed(false)
	u.logger.Warn("order processing failed",
		slog.String("order_id", id),
		slog.String("error", message),
	)
	return orderOutcome{
		done:    true,
		failure: &model.OrderFailure{OrderID: id, Error: message, Details: failureDetails(err)},
	}
}
