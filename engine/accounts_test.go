package engine_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/lease-engine/engine"
)

func TestLoadChart_PartialOverride(t *testing.T) {
	// GIVEN a YAML file overriding two accounts
	path := filepath.Join(t.TempDir(), "accounts.yaml")
	yaml := "cash: \"1010 - Operating Cash\"\nlease_liability: \"2310 - Lease Obligations\"\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	// WHEN loading the chart
	chart, err := engine.LoadChart(path)
	require.NoError(t, err)

	// THEN overridden names apply and the rest keep their defaults
	assert.Equal(t, "1010 - Operating Cash", chart.Cash)
	assert.Equal(t, "2310 - Lease Obligations", chart.LeaseLiability)
	assert.Equal(t, "Right-of-Use Asset", chart.RightOfUseAsset)
	assert.Equal(t, "Interest Expense", chart.InterestExpense)
}

func TestLoadChart_MissingFile(t *testing.T) {
	_, err := engine.LoadChart(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadChart_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cash: [unclosed"), 0o644))

	_, err := engine.LoadChart(path)
	assert.Error(t, err)
}
