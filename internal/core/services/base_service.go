package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Clock is overridden in tests.
	Clock func() time.Time
}

func newBaseService() BaseService {
	return BaseService{Clock: func() time.Time { return time.Now().UTC() }}
}

// Now returns the service clock's current time.
func (s *BaseService) Now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// requireOrganization loads the tenant, mapping a missing one to ErrNotFound.
func (s *BaseService) requireOrganization(ctx context.Context, orgRepo portsrepo.OrganizationReader, organizationID string) (*domain.Organization, error) {
	if organizationID == "" {
		return nil, apperrors.NewValidationError("organization id is required")
	}
	org, err := orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: organization %s", apperrors.ErrNotFound, organizationID)
		}
		s.LogError(ctx, err, "Failed to load organization", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to load organization %s: %w", organizationID, err)
	}
	return org, nil
}
