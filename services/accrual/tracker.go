package accrual

import (
	"github.com/shopspring/decimal"

	"betenlace/models"
)

// TrackedData là số liệu ngày sau khi áp tracker của partner
type TrackedData struct {
	Deposit           decimal.Decimal
	RegisteredCount   uint32
	CPACount          uint32
	FirstDepositCount uint32
	WageringCount     uint32
}

// ShapeCPACount: nếu n > minPerDay thì floor(n * tracker), ngược lại giữ nguyên
func ShapeCPACount(n uint32, tracker decimal.Decimal, minPerDay uint32) uint32 {
	if n <= minPerDay {
		return n
	}
	return floorMul(n, tracker)
}

// ShapeCount áp tracker cho các số đếm khác, chỉ khi count > 1
func ShapeCount(count uint32, tracker decimal.Decimal) uint32 {
	if count <= 1 {
		return count
	}
	return floorMul(count, tracker)
}

func floorMul(n uint32, factor decimal.Decimal) uint32 {
	v := countDecimal(n).Mul(factor).Floor()
	if v.IsNegative() {
		return 0
	}
	if v.GreaterThan(countDecimal(n)) {
		return n
	}
	return uint32(v.IntPart())
}

// RollbackPartner bỏ cờ cpa_partner của các tài khoản cuối danh sách, chỉ giữ keep tài khoản đầu.
// cpa_betenlace không bị động tới.
func RollbackPartner(queue []*Qualification, keep uint32) {
	for i := len(queue) - 1; i >= 0 && uint32(i) >= keep; i-- {
		queue[i].Account.CPAPartner = 0
		queue[i].Daily.IsCPAPartner = false
	}
}

func (e *Engine) shape(pla *models.PartnerLinkAccumulated, values DayValues, queue []*Qualification) TrackedData {
	cpaCount := ShapeCPACount(values.CPACount, pla.Tracker, e.settings.MinCPATrackerDay)
	if cpaCount < values.CPACount && len(queue) > 0 {
		RollbackPartner(queue, cpaCount)
		e.logger.Debug("tracker %s: giữ %d/%d CPA cho PLA %d", pla.Tracker, cpaCount, values.CPACount, pla.ID)
	}
	return TrackedData{
		Deposit:           values.Deposit.Mul(pla.TrackerDeposit),
		RegisteredCount:   ShapeCount(values.RegisteredCount, pla.TrackerRegisteredCount),
		CPACount:          cpaCount,
		FirstDepositCount: ShapeCount(values.FirstDepositCount, pla.TrackerFirstDepositCount),
		WageringCount:     ShapeCount(values.WageringCount, pla.TrackerWageringCount),
	}
}
