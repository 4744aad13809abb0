package services

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetEntry retrieves an entry with its lines.
	GetEntry(ctx context.Context, organizationID, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a page of entries newest first.
	ListEntries(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// Validate checks a draft without touching storage.
	Validate(draft domain.EntryDraft) domain.ValidationResult

	// PostEntry validates and persists a balanced entry in one transaction.
	PostEntry(ctx context.Context, organizationID string, draft domain.EntryDraft, userID string) (*domain.JournalEntry, error)

	// PostDocument posts a verified document with the fixed expense/VAT/payable template
	// and records the merchant's account for future suggestions.
	PostDocument(ctx context.Context, organizationID string, doc domain.DocumentPosting, userID string) (*domain.JournalEntry, error)

	// ReverseEntry posts a new entry with every line's sides swapped.
	ReverseEntry(ctx context.Context, organizationID, entryID, userID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
// This is a facade for clients that need access to all operations
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
