package domain

import "time"

// AuditAction names what happened to an audited entity.
type AuditAction string

const (
	AuditEntryPosted    AuditAction = "journal_entry.posted"
	AuditEntryReversed  AuditAction = "journal_entry.reversed"
	AuditDocumentPosted AuditAction = "document.posted"
	AuditRuleLearned    AuditAction = "classification_rule.learned"
)

// AuditEvent is what the core hands to the audit log writer after a successful write.
type AuditEvent struct {
	OrganizationID string
	Action         AuditAction
	EntityType     string
	EntityID       string
	UserID         string
	OccurredAt     time.Time
	Details        map[string]string
}
