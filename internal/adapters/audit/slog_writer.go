// Package audit ships ledger audit events to a structured log stream.
package audit

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/core/ports"
	"github.com/SscSPs/ledger_core/internal/middleware"
)

// SlogWriter writes one structured record per audit event.
type SlogWriter struct {
	logger *slog.Logger
}

var _ ports.AuditWriter = (*SlogWriter)(nil)

// NewSlogWriter uses logger, or the request logger from the context when logger is nil.
func NewSlogWriter(logger *slog.Logger) *SlogWriter {
	return &SlogWriter{logger: logger}
}

func (w *SlogWriter) Record(ctx context.Context, event domain.AuditEvent) error {
	logger := w.logger
	if logger == nil {
		logger = middleware.GetLoggerFromCtx(ctx)
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	keys := make([]string, 0, len(event.Details))
	for k := range event.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	details := make([]any, 0, len(keys))
	for _, k := range keys {
		details = append(details, slog.String(k, event.Details[k]))
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "audit",
		slog.String("organization_id", event.OrganizationID),
		slog.String("action", string(event.Action)),
		slog.String("entity_type", event.EntityType),
		slog.String("entity_id", event.EntityID),
		slog.String("user_id", event.UserID),
		slog.Time("occurred_at", event.OccurredAt),
		slog.Group("details", details...),
	)
	return nil
}
