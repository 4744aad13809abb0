package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SuggestionSource records which tier of the learner produced a suggestion.
type SuggestionSource string

const (
	SuggestionLearned     SuggestionSource = "learned"
	SuggestionMerchantMap SuggestionSource = "merchant_map"
	SuggestionBuiltin     SuggestionSource = "builtin"
	SuggestionModel       SuggestionSource = "model"
)

// ClassificationRule is a learned pattern -> account mapping for one organization.
// Pattern is stored normalized.
type ClassificationRule struct {
	RuleID         string          `json:"ruleID"`
	OrganizationID string          `json:"organizationID"`
	Pattern        string          `json:"pattern"`
	AccountID      string          `json:"accountID"`
	Confidence     decimal.Decimal `json:"confidence"`
	TimesUsed      int             `json:"timesUsed"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// MerchantMapping is the last account a merchant was posted against.
type MerchantMapping struct {
	OrganizationID string          `json:"organizationID"`
	MerchantName   string          `json:"merchantName"`
	GLAccountID    string          `json:"glAccountID"`
	Confidence     decimal.Decimal `json:"confidence"`
	LastUsed       time.Time       `json:"lastUsed"`
}

// BuiltinRule is one entry of the ordered fallback keyword list. The target is an
// account code because built-ins are shared by every organization.
type BuiltinRule struct {
	Name        string
	Pattern     string
	AccountCode string
	Confidence  decimal.Decimal
}

// Suggestion is the learner's answer for a description/merchant pair.
type Suggestion struct {
	AccountID   string           `json:"accountID"`
	AccountCode string           `json:"accountCode"`
	AccountName string           `json:"accountName"`
	Confidence  decimal.Decimal  `json:"confidence"`
	Reason      string           `json:"reason"`
	Source      SuggestionSource `json:"source"`
}

// NormalizeText trims, upper-cases and collapses internal whitespace.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToUpper(s)), " ")
}

// PatternMatches reports whether a normalized pattern and a normalized text contain
// one another. Empty inputs never match.
func PatternMatches(pattern, text string) bool {
	if pattern == "" || text == "" {
		return false
	}
	return strings.Contains(text, pattern) || strings.Contains(pattern, text)
}
