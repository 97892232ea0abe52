package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountRow là một dòng của file account (một người chơi trong một ngày)
type AccountRow struct {
	Line           int
	ActivityDate   time.Time
	PromCode       string
	PunterID       string
	Deposit        decimal.Decimal
	Stake          decimal.Decimal
	CPACommission  decimal.Decimal
	NetRevenue     decimal.Decimal
	RevenueShare   decimal.Decimal
	CPACount       uint32
	RegisteredAt   *time.Time
	FirstDepositAt *time.Time
	CPAAt          *time.Time
}

// MemberRow là tổng theo link trong ngày; với netrefer các cột là lũy kế tháng (MTD)
type MemberRow struct {
	Line              int
	ActivityDate      time.Time
	PromCode          string
	Deposit           decimal.Decimal
	Stake             decimal.Decimal
	CPACommission     decimal.Decimal
	NetRevenue        decimal.Decimal
	RevenueShare      decimal.Decimal
	RegisteredCount   uint32
	CPACount          uint32
	FirstDepositCount uint32
	WageringCount     uint32
}
