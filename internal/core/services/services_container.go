package services

import (
	"fmt"

	"github.com/SscSPs/ledger_core/internal/core/ports"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, audit ports.AuditWriter) (*portssvc.ServiceContainer, error) {
	container := &portssvc.ServiceContainer{}

	container.Organization = NewOrganizationService(repos.OrganizationRepo)
	container.Account = NewAccountService(repos.AccountRepo, repos.OrganizationRepo)
	container.Period = NewPeriodService(repos.PeriodRepo, repos.OrganizationRepo, repos.TxManager)

	classifier, err := NewClassificationService(repos.ClassificationRepo, repos.AccountRepo, repos.OrganizationRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize classification service: %w", err)
	}
	container.Classification = classifier

	journalOpts := []JournalServiceOption{
		WithClassificationService(classifier),
		WithAuditWriter(audit),
	}
	if cfg != nil {
		journalOpts = append(journalOpts,
			WithReservedAccountCodes(cfg.ReservedAccounts),
			WithDocumentTaxCode(cfg.DocumentTaxCode))
	}
	container.Journal = NewJournalService(repos.JournalRepo, repos.OrganizationRepo, repos.TxManager, container.Period, journalOpts...)

	reporting := NewReportingService(repos.LedgerRepo, repos.AccountRepo, repos.OrganizationRepo)
	container.Ledger = reporting
	container.VAT = reporting

	return container, nil
}
