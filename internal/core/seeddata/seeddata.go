// Package seeddata holds the embedded onboarding chart of accounts and the ordered
// built-in classification rules.
package seeddata

import (
	_ "embed"
	"fmt"
	"regexp"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed chart_of_accounts.yaml
var chartYAML []byte

//go:embed builtin_rules.yaml
var rulesYAML []byte

// ChartAccount is one row of the onboarding template.
type ChartAccount struct {
	Code          string `yaml:"code"`
	Name          string `yaml:"name"`
	AccountTypeID string `yaml:"type"`
	IsSystem      bool   `yaml:"system"`
	TaxCode       string `yaml:"tax_code"`
}

type chartFile struct {
	Accounts []ChartAccount `yaml:"accounts"`
}

type ruleFile struct {
	Rules []struct {
		Name        string `yaml:"name"`
		Pattern     string `yaml:"pattern"`
		AccountCode string `yaml:"account_code"`
		Confidence  string `yaml:"confidence"`
	} `yaml:"rules"`
}

// BuiltinMatcher is a compiled built-in rule.
type BuiltinMatcher struct {
	domain.BuiltinRule
	re *regexp.Regexp
}

// Match reports whether the rule's expression matches normalized text.
func (m BuiltinMatcher) Match(text string) bool {
	return text != "" && m.re.MatchString(text)
}

// ChartOfAccounts returns the embedded onboarding template in file order.
func ChartOfAccounts() ([]ChartAccount, error) {
	return ParseChartOfAccounts(chartYAML)
}

// ParseChartOfAccounts decodes a chart template.
func ParseChartOfAccounts(data []byte) ([]ChartAccount, error) {
	var f chartFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse chart of accounts: %w", err)
	}
	seen := make(map[string]struct{}, len(f.Accounts))
	for i, a := range f.Accounts {
		if a.Code == "" || a.Name == "" || a.AccountTypeID == "" {
			return nil, fmt.Errorf("chart of accounts entry %d: code, name and type are required", i+1)
		}
		if _, dup := seen[a.Code]; dup {
			return nil, fmt.Errorf("chart of accounts entry %d: duplicate code %s", i+1, a.Code)
		}
		seen[a.Code] = struct{}{}
	}
	return f.Accounts, nil
}

// BuiltinRules returns the embedded rule list compiled, in priority order.
func BuiltinRules() ([]BuiltinMatcher, error) {
	return ParseBuiltinRules(rulesYAML)
}

// ParseBuiltinRules decodes and compiles a rule list.
func ParseBuiltinRules(data []byte) ([]BuiltinMatcher, error) {
	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse builtin rules: %w", err)
	}
	matchers := make([]BuiltinMatcher, 0, len(f.Rules))
	for _, r := range f.Rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("builtin rule %q: invalid pattern: %w", r.Name, err)
		}
		conf, err := decimal.NewFromString(r.Confidence)
		if err != nil {
			return nil, fmt.Errorf("builtin rule %q: invalid confidence: %w", r.Name, err)
		}
		if conf.IsNegative() || conf.GreaterThan(decimal.NewFromInt(1)) {
			return nil, fmt.Errorf("builtin rule %q: confidence must be within [0, 1]", r.Name)
		}
		if r.AccountCode == "" {
			return nil, fmt.Errorf("builtin rule %q: account_code is required", r.Name)
		}
		matchers = append(matchers, BuiltinMatcher{
			BuiltinRule: domain.BuiltinRule{
				Name:        r.Name,
				Pattern:     r.Pattern,
				AccountCode: r.AccountCode,
				Confidence:  conf.Round(domain.ConfidencePlaces),
			},
			re: re,
		})
	}
	return matchers, nil
}
