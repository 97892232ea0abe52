package csvreport

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"betenlace/dto"
	"betenlace/errors"
	"betenlace/utils"
)

type rowParser struct {
	record Record
	schema string
	err    error
}

func (p *rowParser) fail(field string, err error) {
	if p.err == nil {
		p.err = errors.NewAppError(errors.ErrCodeSchema,
			fmt.Sprintf("file %s dòng %d, field %s không hợp lệ", p.schema, p.record.Line, field), err)
	}
}

func (p *rowParser) amount(field string, parse func(string) (decimal.Decimal, error)) decimal.Decimal {
	v, err := parse(p.record.Get(field))
	if err != nil {
		p.fail(field, err)
	}
	return v
}

func (p *rowParser) count(field string) uint32 {
	v, err := ParseCount(p.record.Get(field))
	if err != nil {
		p.fail(field, err)
	}
	return v
}

func (p *rowParser) date(field string) *time.Time {
	v, err := ParseDate(p.record.Get(field))
	if err != nil {
		p.fail(field, err)
	}
	return v
}

func (p *rowParser) requiredDate(field string) time.Time {
	v := p.date(field)
	if v == nil {
		p.fail(field, errors.ErrMissingRequired)
		return time.Time{}
	}
	return *v
}

func (p *rowParser) requiredString(field string) string {
	v := p.record.Get(field)
	if v == "" {
		p.fail(field, errors.ErrMissingRequired)
	}
	return v
}

// AccountRows chuyển bảng account thành các dòng theo người chơi
func AccountRows(t *Table) ([]dto.AccountRow, error) {
	rows := make([]dto.AccountRow, 0, len(t.Records))
	for _, record := range t.Records {
		p := &rowParser{record: record, schema: t.Schema.Name}
		row := dto.AccountRow{
			Line:           record.Line,
			ActivityDate:   p.requiredDate(FieldActivityDate),
			PromCode:       p.requiredString(FieldPromCode),
			PunterID:       p.requiredString(FieldPunterID),
			Deposit:        p.amount(FieldDeposit, ParseDecimal),
			Stake:          p.amount(FieldStake, ParseDecimal),
			CPACommission:  p.amount(FieldCPACommission, ParseDecimal),
			NetRevenue:     p.amount(FieldNetRevenue, ParseDecimal),
			RevenueShare:   p.amount(FieldRevenueShare, ParseDecimal),
			CPACount:       p.count(FieldCPACount),
			RegisteredAt:   p.date(FieldRegisteredAt),
			FirstDepositAt: p.date(FieldFirstDepositAt),
			CPAAt:          p.date(FieldCPAAt),
		}
		if p.err != nil {
			return nil, p.err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// MemberRows chuyển bảng member thành các dòng theo link
func MemberRows(t *Table) ([]dto.MemberRow, error) {
	rows := make([]dto.MemberRow, 0, len(t.Records))
	for _, record := range t.Records {
		p := &rowParser{record: record, schema: t.Schema.Name}
		row := dto.MemberRow{
			Line:              record.Line,
			ActivityDate:      p.requiredDate(FieldActivityDate),
			PromCode:          p.requiredString(FieldPromCode),
			Deposit:           p.amount(FieldDeposit, ParseDecimal),
			Stake:             p.amount(FieldStake, ParseDecimal),
			CPACommission:     p.amount(FieldCPACommission, ParseDecimal),
			NetRevenue:        p.amount(FieldNetRevenue, ParseDecimal),
			RevenueShare:      p.amount(FieldRevenueShare, ParseDecimal),
			RegisteredCount:   p.count(FieldRegisteredCount),
			CPACount:          p.count(FieldCPACount),
			FirstDepositCount: p.count(FieldFirstDepositCount),
			WageringCount:     p.count(FieldWageringCount),
		}
		if p.err != nil {
			return nil, p.err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// NetreferRows chuyển file netrefer (lũy kế tháng) thành MemberRow; Turnover có thể vắng mặt
func NetreferRows(t *Table) ([]dto.MemberRow, error) {
	rows := make([]dto.MemberRow, 0, len(t.Records))
	for _, record := range t.Records {
		p := &rowParser{record: record, schema: t.Schema.Name}
		row := dto.MemberRow{
			Line:              record.Line,
			PromCode:          p.requiredString(FieldPromCode),
			Deposit:           p.amount(FieldDeposit, ParseMoney),
			Stake:             p.amount(FieldStake, ParseMoney),
			NetRevenue:        p.amount(FieldNetRevenue, ParseMoney),
			RegisteredCount:   p.count(FieldRegisteredCount),
			CPACount:          p.count(FieldCPACount),
			FirstDepositCount: p.count(FieldFirstDepositCount),
			WageringCount:     p.count(FieldWageringCount),
		}
		if p.err != nil {
			return nil, p.err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// CheckActivityDate yêu cầu mọi dòng cùng một activity_date và trùng với ngày upload
func CheckActivityDate(file string, dates []time.Time, day time.Time) error {
	if len(dates) == 0 {
		return nil
	}
	first := utils.DateOnly(dates[0])
	for _, d := range dates[1:] {
		if !utils.DateOnly(d).Equal(first) {
			return errors.NewAppError(errors.ErrCodeDate,
				fmt.Sprintf("file %s có nhiều activity_date (%s, %s)", file, utils.FormatDay(first), utils.FormatDay(d)), nil)
		}
	}
	if !first.Equal(utils.DateOnly(day)) {
		return errors.NewAppError(errors.ErrCodeDate,
			fmt.Sprintf("file %s có activity_date %s khác ngày upload %s", file, utils.FormatDay(first), utils.FormatDay(day)), nil)
	}
	return nil
}

// AccountDates lấy activity_date của các dòng account
func AccountDates(rows []dto.AccountRow) []time.Time {
	dates := make([]time.Time, len(rows))
	for i, row := range rows {
		dates[i] = row.ActivityDate
	}
	return dates
}

// MemberDates lấy activity_date của các dòng member
func MemberDates(rows []dto.MemberRow) []time.Time {
	dates := make([]time.Time, len(rows))
	for i, row := range rows {
		dates[i] = row.ActivityDate
	}
	return dates
}
