package accrual

import (
	"time"

	"github.com/shopspring/decimal"

	"betenlace/constants"
	"betenlace/dto"
	"betenlace/models"
)

var (
	// LegacyCutoff: tài khoản có cpa_at trước ngày này được tính theo chế độ cũ
	LegacyCutoff      = time.Date(2022, time.October, 1, 0, 0, 0, 0, time.UTC)
	LegacyFixedIncome = decimal.NewFromInt(80000)
)

// Settings là cấu hình theo campaign của ingestor
type Settings struct {
	RevenueSharePercentage decimal.Decimal
	CPACondition           decimal.Decimal
	NetRevenueSource       string
	MinCPATrackerDay       uint32
}

func (s Settings) netRevenueFromShare() bool {
	return s.NetRevenueSource == constants.NetRevenueSourceRevenueShare
}

// AccountKey định danh AccountReport theo (link, punter)
type AccountKey struct {
	LinkID   uint
	PunterID string
}

// AccountState là AR cùng ADR của ngày đang ingest (nil nếu chưa có)
type AccountState struct {
	Account *models.AccountReport
	Daily   *models.AccountDailyReport
}

// NewAccountState tạo AR mới cho người chơi lần đầu xuất hiện dưới link
func NewAccountState(linkID uint, punterID string) *AccountState {
	return &AccountState{
		Account: &models.AccountReport{LinkID: linkID, PunterID: punterID},
	}
}

// MonthTotals là tổng BDR của các ngày trước trong cùng tháng (dùng cho netrefer)
type MonthTotals struct {
	Deposit           decimal.Decimal
	Stake             decimal.Decimal
	NetRevenue        decimal.Decimal
	RegisteredCount   uint32
	CPACount          uint32
	FirstDepositCount uint32
	WageringCount     uint32
}

// LinkState gom các bản ghi của một link cho ngày đang ingest
type LinkState struct {
	Link         *models.Link
	BetenlaceCPA *models.BetenlaceCPA
	PartnerLink  *models.PartnerLinkAccumulated
	DailyReport  *models.BetenlaceDailyReport
	PartnerDaily *models.PartnerLinkDailyReport
	PriorMonth   MonthTotals
}

// Qualification là một tài khoản đạt CPA trong ngày, theo thứ tự file
type Qualification struct {
	Account *models.AccountReport
	Daily   *models.AccountDailyReport
}

// DayValues là số liệu của một link trong ngày (đã quy về giá trị ngày)
type DayValues struct {
	Deposit           decimal.Decimal
	Stake             decimal.Decimal
	NetRevenue        decimal.Decimal
	RevenueShare      decimal.Decimal
	RegisteredCount   uint32
	CPACount          uint32
	FirstDepositCount uint32
	WageringCount     uint32
}

// DayValuesFromMember lấy số liệu ngày từ dòng member (biến thể account)
func DayValuesFromMember(row dto.MemberRow) DayValues {
	return DayValues{
		Deposit:           row.Deposit,
		Stake:             row.Stake,
		NetRevenue:        row.NetRevenue,
		RevenueShare:      row.RevenueShare,
		RegisteredCount:   row.RegisteredCount,
		CPACount:          row.CPACount,
		FirstDepositCount: row.FirstDepositCount,
		WageringCount:     row.WageringCount,
	}
}

// StoredDayValues lấy lại số liệu ngày từ BDR đã lưu (nil thì toàn 0), trừ cpa_count
func StoredDayValues(bdr *models.BetenlaceDailyReport) DayValues {
	if bdr == nil {
		return DayValues{}
	}
	return DayValues{
		Deposit:           bdr.Deposit,
		Stake:             bdr.Stake,
		NetRevenue:        bdr.NetRevenue,
		RevenueShare:      bdr.RevenueShare,
		RegisteredCount:   bdr.RegisteredCount,
		FirstDepositCount: bdr.FirstDepositCount,
		WageringCount:     bdr.WageringCount,
	}
}

// NetreferDayValues đổi số lũy kế tháng thành giá trị ngày: max(0, feed - tổng các ngày trước).
// net_revenue giữ dấu; revenue_share = net_revenue * percentage.
func NetreferDayValues(feed dto.MemberRow, prior MonthTotals, revenueSharePercentage decimal.Decimal) DayValues {
	netRevenue := feed.NetRevenue.Sub(prior.NetRevenue)
	return DayValues{
		Deposit:           clampZero(feed.Deposit.Sub(prior.Deposit)),
		Stake:             clampZero(feed.Stake.Sub(prior.Stake)),
		NetRevenue:        netRevenue,
		RevenueShare:      netRevenue.Mul(revenueSharePercentage),
		RegisteredCount:   subCount(feed.RegisteredCount, prior.RegisteredCount),
		CPACount:          subCount(feed.CPACount, prior.CPACount),
		FirstDepositCount: subCount(feed.FirstDepositCount, prior.FirstDepositCount),
		WageringCount:     subCount(feed.WageringCount, prior.WageringCount),
	}
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func subCount(a, b uint32) uint32 {
	if b > a {
		return 0
	}
	return a - b
}

func countDecimal(n uint32) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
