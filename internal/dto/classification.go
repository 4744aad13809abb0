package dto

import (
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SuggestAccountRequest asks the learner where a bank line or receipt should post.
type SuggestAccountRequest struct {
	Description string `json:"description" form:"description" binding:"required_without=Merchant" validate:"required_without=Merchant"`
	Merchant    string `json:"merchant" form:"merchant"`
}

// LearnRuleRequest records a user's confirmation or correction.
type LearnRuleRequest struct {
	Pattern   string `json:"pattern" binding:"required,max=255" validate:"required,max=255"`
	AccountID string `json:"accountID" binding:"required" validate:"required"`
}

// SuggestionResponse is returned when the learner has an answer.
type SuggestionResponse struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Confidence  decimal.Decimal `json:"confidence"`
	Reason      string          `json:"reason"`
	Source      string          `json:"source"`
}

// SuggestAccountResponse wraps an optional suggestion; Suggestion is null when nothing matched.
type SuggestAccountResponse struct {
	Suggestion *SuggestionResponse `json:"suggestion"`
}

// ToSuggestAccountResponse converts an optional domain.Suggestion.
func ToSuggestAccountResponse(s *domain.Suggestion) SuggestAccountResponse {
	if s == nil {
		return SuggestAccountResponse{}
	}
	return SuggestAccountResponse{Suggestion: &SuggestionResponse{
		AccountID:   s.AccountID,
		AccountCode: s.AccountCode,
		AccountName: s.AccountName,
		Confidence:  s.Confidence,
		Reason:      s.Reason,
		Source:      string(s.Source),
	}}
}

// ClassificationRuleResponse defines the data returned for a learned rule.
type ClassificationRuleResponse struct {
	RuleID     string          `json:"ruleID"`
	Pattern    string          `json:"pattern"`
	AccountID  string          `json:"accountID"`
	Confidence decimal.Decimal `json:"confidence"`
	TimesUsed  int             `json:"timesUsed"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// ToClassificationRuleResponse converts a domain.ClassificationRule.
func ToClassificationRuleResponse(r *domain.ClassificationRule) ClassificationRuleResponse {
	return ClassificationRuleResponse{
		RuleID:     r.RuleID,
		Pattern:    r.Pattern,
		AccountID:  r.AccountID,
		Confidence: r.Confidence,
		TimesUsed:  r.TimesUsed,
		UpdatedAt:  r.UpdatedAt,
	}
}

// ToListClassificationRuleResponse converts rules preserving their order.
func ToListClassificationRuleResponse(rules []domain.ClassificationRule) []ClassificationRuleResponse {
	res := make([]ClassificationRuleResponse, len(rules))
	for i := range rules {
		res[i] = ToClassificationRuleResponse(&rules[i])
	}
	return res
}
