package accrual

import (
	"github.com/shopspring/decimal"

	"betenlace/models"
)

// applyBookmaker cập nhật BC (tháng) và BDR (ngày) phía nhà cái.
// Nếu BDR của ngày đã tồn tại thì trừ phần đóng góp cũ khỏi BC trước khi cộng giá trị mới.
func (e *Engine) applyBookmaker(link *LinkState, values DayValues) *models.BetenlaceDailyReport {
	bc := link.BetenlaceCPA
	bdr := link.DailyReport

	if bdr != nil {
		bc.Deposit = bc.Deposit.Sub(bdr.Deposit)
		bc.Stake = bc.Stake.Sub(bdr.Stake)
		bc.NetRevenue = bc.NetRevenue.Sub(bdr.NetRevenue)
		bc.RevenueShare = bc.RevenueShare.Sub(bdr.RevenueShare)
		bc.FixedIncome = bc.FixedIncome.Sub(bdr.FixedIncome)
		bc.RegisteredCount = subCount(bc.RegisteredCount, bdr.RegisteredCount)
		bc.CPACount = subCount(bc.CPACount, bdr.CPACountValue())
		bc.FirstDepositCount = subCount(bc.FirstDepositCount, bdr.FirstDepositCount)
		bc.WageringCount = subCount(bc.WageringCount, bdr.WageringCount)
	} else {
		bdr = &models.BetenlaceDailyReport{
			LinkID:         link.Link.ID,
			BetenlaceCPAID: bc.ID,
			Day:            e.day,
		}
		link.DailyReport = bdr
	}

	fixedIncome := e.campaign.FixedIncomeUnitary.Mul(countDecimal(values.CPACount))

	bc.Deposit = bc.Deposit.Add(values.Deposit)
	bc.Stake = bc.Stake.Add(values.Stake)
	bc.NetRevenue = bc.NetRevenue.Add(values.NetRevenue)
	bc.RevenueShare = bc.RevenueShare.Add(values.RevenueShare)
	bc.FixedIncome = bc.FixedIncome.Add(fixedIncome)
	bc.RegisteredCount += values.RegisteredCount
	bc.CPACount += values.CPACount
	bc.FirstDepositCount += values.FirstDepositCount
	bc.WageringCount += values.WageringCount

	cpaCount := values.CPACount
	bdr.CurrencyCondition = e.campaign.CurrencyCondition
	bdr.CurrencyFixedIncome = e.campaign.CurrencyFixedIncome
	bdr.Deposit = values.Deposit
	bdr.Stake = values.Stake
	bdr.NetRevenue = values.NetRevenue
	bdr.RevenueShare = values.RevenueShare
	bdr.FixedIncome = fixedIncome
	bdr.FixedIncomeUnitary = decimal.Zero
	if cpaCount > 0 {
		bdr.FixedIncomeUnitary = fixedIncome.Div(countDecimal(cpaCount))
	}
	bdr.RegisteredCount = values.RegisteredCount
	bdr.CPACount = &cpaCount
	bdr.FirstDepositCount = values.FirstDepositCount
	bdr.WageringCount = values.WageringCount
	if snapshot := e.fx.Snapshot(); snapshot != nil {
		fxID := snapshot.ID
		bdr.FxPartnerID = &fxID
	}

	e.changes.TouchBetenlaceCPA(bc)
	e.changes.TouchDailyReport(bdr)
	return bdr
}
