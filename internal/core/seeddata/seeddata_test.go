package seeddata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartOfAccounts_ContainsReservedAccounts(t *testing.T) {
	chart, err := ChartOfAccounts()
	require.NoError(t, err)

	byCode := make(map[string]ChartAccount, len(chart))
	for _, a := range chart {
		byCode[a.Code] = a
	}
	for _, code := range []string{"1150", "2150", "2000"} {
		a, ok := byCode[code]
		require.True(t, ok, "reserved code %s missing", code)
		assert.True(t, a.IsSystem, "reserved code %s must be a system account", code)
	}
	assert.Equal(t, "expense", byCode["6300"].AccountTypeID)
}

func TestParseChartOfAccounts_RejectsDuplicates(t *testing.T) {
	_, err := ParseChartOfAccounts([]byte(`accounts:
  - {code: "1000", name: "Cash", type: current_asset}
  - {code: "1000", name: "Bank", type: current_asset}
`))
	assert.ErrorContains(t, err, "duplicate code 1000")
}

func TestBuiltinRules_OrderAndMatching(t *testing.T) {
	rules, err := BuiltinRules()
	require.NoError(t, err)
	require.NotEmpty(t, rules)
	assert.Equal(t, "utilities", rules[0].Name)

	first := func(text string) string {
		for _, r := range rules {
			if r.Match(text) {
				return r.AccountCode
			}
		}
		return ""
	}
	assert.Equal(t, "6200", first("DEWA BILL PAYMENT MARCH"))
	assert.Equal(t, "6000", first("WPS SALARY TRANSFER"))
	assert.Equal(t, "6600", first("STARBUCKS DUBAI MALL"))
	assert.Equal(t, "", first("RANDOM TRANSFER 0042"))
	assert.Equal(t, "", first(""))
}

func TestParseBuiltinRules_Invalid(t *testing.T) {
	_, err := ParseBuiltinRules([]byte(`rules:
  - {name: broken, pattern: "(", account_code: "6000", confidence: "0.5"}
`))
	assert.ErrorContains(t, err, "invalid pattern")

	_, err = ParseBuiltinRules([]byte(`rules:
  - {name: high, pattern: "X", account_code: "6000", confidence: "1.5"}
`))
	assert.ErrorContains(t, err, "within [0, 1]")
}
