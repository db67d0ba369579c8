package fees

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubdues/internal/models"
)

func TestNormalizeLegacy(t *testing.T) {
	rates := NormalizeLegacy(30000, 50000)
	require.Len(t, rates, 2)
	assert.Equal(t, "regular", rates[0].FeeTypeName)
	assert.Equal(t, int64(30000), rates[0].Amount)
	assert.Equal(t, models.PeriodMonthly, rates[0].Period)
	assert.Equal(t, 1, rates[0].MonthCount)
	assert.Equal(t, "couple", rates[1].FeeTypeName)
	assert.Equal(t, int64(50000), rates[1].Amount)
}

func TestNormalizeLegacySkipsNonPositive(t *testing.T) {
	rates := NormalizeLegacy(30000, 0)
	require.Len(t, rates, 1)
	assert.Equal(t, "regular", rates[0].FeeTypeName)

	assert.Empty(t, NormalizeLegacy(0, 0))
}

func TestConfigNormalizePrefersRateTable(t *testing.T) {
	cfg := Config{
		FeeRates: []models.FeeRate{
			{FeeTypeID: 9, FeeTypeName: "special", Period: models.PeriodMonthly, Amount: 20000, MonthCount: 1},
		},
		RegularAmount: 30000,
		CoupleAmount:  50000,
	}
	rates := cfg.Normalize()
	require.Len(t, rates, 1)
	assert.Equal(t, int64(9), rates[0].FeeTypeID)
}

func TestConfigNormalizeLegacyFallback(t *testing.T) {
	cfg := Config{RegularAmount: 30000}
	rates := cfg.Normalize()
	require.Len(t, rates, 1)
	assert.Equal(t, models.PeriodMonthly, rates[0].Period)

	// Validation over normalized legacy rates accepts monthly multiples.
	result := Validate(90000, rates)
	assert.True(t, result.Valid)
	assert.Equal(t, 3, result.MonthCount)
}
