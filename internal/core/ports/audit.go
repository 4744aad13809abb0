package ports

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// AuditWriter receives an event after every successful ledger write.
// Persistence of the audit log lives outside the core; implementations must not
// fail the business operation that produced the event.
type AuditWriter interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}
