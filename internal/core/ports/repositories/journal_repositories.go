package repositories

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindEntryByID retrieves an entry header together with its lines.
	FindEntryByID(ctx context.Context, organizationID, entryID string) (*domain.JournalEntry, error)

	// FindEntryBySource finds the entry produced from an external source record, or apperrors.ErrNotFound.
	FindEntryBySource(ctx context.Context, organizationID string, sourceType domain.SourceType, sourceID string) (*domain.JournalEntry, error)

	// FindReversalOf finds the entry that reverses entryID, or apperrors.ErrNotFound.
	FindReversalOf(ctx context.Context, organizationID, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves headers newest first using token-based pagination.
	// It returns the entries, a token for the next page, and an error.
	ListEntries(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalWriter defines write operations for journal data.
// Both methods must run inside a transaction opened by TransactionManager.
type JournalWriter interface {
	// NextEntrySequence serializes numbering for the organization until the surrounding
	// transaction ends and returns the current entry count plus one.
	NextEntrySequence(ctx context.Context, organizationID string) (int, error)

	// SaveEntry persists the header and all of its lines.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
// This is a facade for clients that need access to all operations
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
