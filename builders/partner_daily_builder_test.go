package builders

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betenlace/models"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPartnerDailyBuilder(t *testing.T) {
	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	adviser := uint(9)
	partner := &models.Partner{
		ID:                           40,
		AdviserID:                    &adviser,
		FixedIncomeAdviserPercentage: decimal.NewNullDecimal(d("0.1")),
		NetRevenueAdviserPercentage:  decimal.NewNullDecimal(d("0.05")),
	}
	pla := &models.PartnerLinkAccumulated{
		ID: 30, PartnerID: 40, PercentageCPA: d("0.6"), CurrencyLocal: "USD",
		Tracker: d("1"), TrackerDeposit: d("0.5"),
	}
	bdr := &models.BetenlaceDailyReport{ID: 77}
	cascade := Cascade{
		FixedIncome:        d("30000"),
		NetRevenueBase:     d("50000"),
		FxFixedIncomeLocal: d("0.0002375"),
		FxConditionLocal:   d("0.0002375"),
	}

	report := NewPartnerDailyBuilder(nil).
		WithOwner(day, bdr, pla).
		WithFixedIncome("COP", d("30000"), d("30000"), d("7.125"), d("7.125")).
		WithFx(d("0.0002375"), d("0.0002375"), d("0.95")).
		WithTracked(d("50"), 1, 1, 1, 0).
		WithTrackers(pla).
		WithAdviser(partner, cascade).
		WithReferrer(partner, cascade).
		Build()

	assert.Equal(t, uint(77), report.BetenlaceDailyReportID)
	assert.Equal(t, uint(30), report.PartnerLinkAccumulatedID)
	assert.Equal(t, uint(40), report.PartnerID)
	assert.Equal(t, "USD", report.CurrencyLocal)
	assert.Equal(t, "COP", report.CurrencyFixedIncome)
	assert.Equal(t, uint32(1), report.CPACount)
	assert.True(t, d("0.5").Equal(report.TrackerDeposit))

	require.NotNil(t, report.AdviserID)
	assert.Equal(t, uint(9), *report.AdviserID)
	require.True(t, report.FixedIncomeAdviser.Valid)
	assert.True(t, d("3000").Equal(report.FixedIncomeAdviser.Decimal))
	assert.True(t, d("0.7125").Equal(report.FixedIncomeAdviserLocal.Decimal))
	assert.True(t, d("2500").Equal(report.NetRevenueAdviser.Decimal))
	assert.True(t, d("0.59375").Equal(report.NetRevenueAdviserLocal.Decimal))

	assert.Nil(t, report.ReferredBy)
	assert.False(t, report.FixedIncomeReferred.Valid)
	assert.False(t, report.NetRevenueReferredPercentage.Valid)
}

func TestPartnerDailyBuilder_ReusesExisting(t *testing.T) {
	existing := &models.PartnerLinkDailyReport{ID: 5, CPACount: 3}
	report := NewPartnerDailyBuilder(existing).WithTracked(decimal.Zero, 0, 1, 0, 0).Build()

	assert.Same(t, existing, report)
	assert.Equal(t, uint(5), report.ID)
	assert.Equal(t, uint32(1), report.CPACount)
}

func TestPartnerDailyBuilder_AdviserWithoutPercentage(t *testing.T) {
	adviser := uint(9)
	report := NewPartnerDailyBuilder(nil).
		WithAdviser(&models.Partner{AdviserID: &adviser}, Cascade{FixedIncome: d("10")}).
		WithAdviser(nil, Cascade{}).
		Build()
	assert.Nil(t, report.AdviserID)
	assert.False(t, report.FixedIncomeAdviser.Valid)

	report = NewPartnerDailyBuilder(nil).
		WithAdviser(&models.Partner{AdviserID: &adviser}, Cascade{FixedIncome: d("10")}).
		Build()
	require.NotNil(t, report.AdviserID)
	assert.False(t, report.FixedIncomeAdviser.Valid)
	assert.False(t, report.NetRevenueAdviser.Valid)
}
