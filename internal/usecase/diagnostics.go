package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rushrr/courier/internal/adapter/shopify"
	domainErrors "github.com/rushrr/courier/internal/domain/errors"
	"github.com/rushrr/courier/internal/domain/model"
	"github.com/rushrr/courier/internal/domain/repository"
)

var (
	nextStepsReady   = []string{"You can now process orders normally"}
	nextStepsNoToken = []string{"Please configure your Rushrr API token in the app settings"}
)

var shopifyTroubleshooting = []string{
	"Check if the order ID exists",
	"Verify app permissions include order read access",
	"Ensure the app is properly installed",
}

// DiagnosticsUseCase checks the order processing chain of a shop step by step.
type DiagnosticsUseCase struct {
	sessions    repository.SessionRepository
	credentials repository.CredentialStore
	shopify     shopify.Client
	logger      *slog.Logger
}

// NewDiagnosticsUseCase constructs DiagnosticsUseCase.
func NewDiagnosticsUseCase(
	sessions repository.SessionRepository,
	credentials repository.CredentialStore,
	client shopify.Client,
	logger *slog.Logger,
) *DiagnosticsUseCase {
	return &DiagnosticsUseCase{
		sessions:    sessions,
		credentials: credentials,
		shopify:     client,
		logger:      logger,
	}
}

// TestOrder reports on authentication, the logistics token and Shopify API
// access using the first of ids. Step failures are part of the report.
func (u *DiagnosticsUseCase) TestOrder(ctx context.Context, shop string, ids []string) (*model.DiagnosticsReport, error) {
	session, err := requireSession(ctx, u.sessions, shop)
	if err != nil {
		return nil, err
	}

	hasToken := true
	if _, err := requireToken(ctx, u.credentials, shop); err != nil {
		if !errors.Is(err, domainErrors.ErrTokenNotConfigured) {
			return nil, err
		}
		hasToken = false
	}

	report := &model.DiagnosticsReport{
		Setup: model.SetupReport{
			Authentication: model.DiagnosticWorking,
			Shop:           session.Shop,
			Token:          model.DiagnosticMissing,
		},
	}
	if hasToken {
		report.Setup.Token = model.DiagnosticFound
	}

	if len(ids) == 0 {
		report.Error = "Please provide orderIds array for testing"
		return report, nil
	}

	flat, err := u.shopify.FetchREST(ctx, session, ids[0])
	if err != nil {
		u.logger.Warn("shopify api check failed",
			slog.String("shop", session.Shop),
			slog.String("order_id", ids[0]),
			slog.String("error", err.Error()),
		)
		report.Error = "Shopify API access failed"
		report.Setup.ShopifyAPI = model.DiagnosticFailed
		report.Setup.ShopifyError = err.Error()
		report.Troubleshooting = shopifyTroubleshooting
		return report, nil
	}

	customer := "N/A"
	if flat.Customer != nil && flat.Customer.FirstName != "" {
		customer = flat.Customer.FirstName
	}

	report.Success = true
	report.Message = "All systems working correctly!"
	report.Setup.ShopifyAPI = model.DiagnosticWorking
	report.Setup.TestOrder = &model.TestOrderSummary{
		ID:       flat.ID.String(),
		Number:   flat.OrderNumber.String(),
		Customer: customer,
	}
	report.NextSteps = nextStepsNoToken
	if hasToken {
		report.NextSteps = nextStepsReady
	}
	return report, nil
}
