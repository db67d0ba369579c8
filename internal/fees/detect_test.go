package fees

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clubdues/internal/models"
)

func TestDetectFeeTypeExact(t *testing.T) {
	info, ok := DetectFeeType(330000, testRates())
	assert.True(t, ok)
	assert.Equal(t, models.PeriodAnnual, info.Period)
	assert.Equal(t, int64(3), info.FeeTypeID)
}

func TestDetectFeeTypePeriodPriority(t *testing.T) {
	rates := []models.FeeRate{
		{FeeTypeID: 1, FeeTypeName: "monthly", Period: models.PeriodMonthly, Amount: 90000, MonthCount: 1},
		{FeeTypeID: 2, FeeTypeName: "quarterly", Period: models.PeriodQuarterly, Amount: 90000, MonthCount: 3},
		{FeeTypeID: 3, FeeTypeName: "annual", Period: models.PeriodAnnual, Amount: 90000, MonthCount: 12},
	}
	info, ok := DetectFeeType(90000, rates)
	assert.True(t, ok)
	assert.Equal(t, models.PeriodAnnual, info.Period)
}

func TestDetectFeeTypeMonthlyMultiple(t *testing.T) {
	info, ok := DetectFeeType(60000, testRates())
	assert.True(t, ok)
	assert.Equal(t, models.PeriodMonthly, info.Period)
	assert.Equal(t, int64(1), info.FeeTypeID)
}

func TestDetectFeeTypeNoMatch(t *testing.T) {
	_, ok := DetectFeeType(12345, testRates())
	assert.False(t, ok)

	_, ok = DetectFeeType(0, testRates())
	assert.False(t, ok)

	_, ok = DetectFeeType(30000, nil)
	assert.False(t, ok)
}
