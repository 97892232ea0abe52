package csvreport

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betenlace/errors"
)

const accountHeader = "Activity Date,Affiliate Profile Site Id,Player Id,Deposits,Stakes,CPA Commission,Net Revenue,RevShare Commission,CPA Count,Registered Date,First Deposit Date,First CPA Date\n"

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"$1,234.50", "1234.5"},
		{"-$12", "-12"},
		{"$-12", "-12"},
		{"(12.00)", "-12"},
		{"S/ 1,000", "1000"},
		{"", "0"},
		{"42", "42"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMoney(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	_, err := ParseMoney("12abc")
	assert.Error(t, err)
	_, err = ParseMoney("$")
	assert.Error(t, err)
}

func TestParseCount(t *testing.T) {
	n, err := ParseCount("1,234")
	require.NoError(t, err)
	assert.Equal(t, uint32(1234), n)

	n, err = ParseCount("12.0")
	require.NoError(t, err)
	assert.Equal(t, uint32(12), n)

	n, err = ParseCount("")
	require.NoError(t, err)
	assert.Equal(t, uint32(0), n)

	_, err = ParseCount("1.5")
	assert.Error(t, err)
	_, err = ParseCount("-1")
	assert.Error(t, err)
}

func TestRead_AccountRows(t *testing.T) {
	data := "\ufeff" + accountHeader +
		"2024-03-15,PROM1,P1,100000,200000,0,50000,20000,0,2024-03-01,2024-03-02,\n" +
		",,,,,,,,,,,\n" +
		"2024-03-15,PROM1,P2,1.5,0,0,0,0,0,,,2022-09-01\n"

	table, err := Read(strings.NewReader(data), AccountSchema)
	require.NoError(t, err)
	require.Len(t, table.Records, 2)

	rows, err := AccountRows(table)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "PROM1", rows[0].PromCode)
	assert.Equal(t, "P1", rows[0].PunterID)
	assert.Equal(t, "20000", rows[0].RevenueShare.String())
	require.NotNil(t, rows[0].FirstDepositAt)
	assert.Nil(t, rows[0].CPAAt)

	assert.Equal(t, 4, rows[1].Line)
	require.NotNil(t, rows[1].CPAAt)
	assert.Equal(t, time.Date(2022, time.September, 1, 0, 0, 0, 0, time.UTC), *rows[1].CPAAt)
}

func TestRead_HeaderOrderIgnored(t *testing.T) {
	data := "Player Id,Activity Date,Affiliate Profile Site Id,Deposits,Stakes,CPA Commission,Net Revenue,RevShare Commission,CPA Count,Registered Date,First Deposit Date,First CPA Date\n" +
		"P1,2024-03-15,PROM1,1,2,0,3,4,0,,,\n"

	table, err := Read(strings.NewReader(data), AccountSchema)
	require.NoError(t, err)
	rows, err := AccountRows(table)
	require.NoError(t, err)
	assert.Equal(t, "P1", rows[0].PunterID)
	assert.Equal(t, "PROM1", rows[0].PromCode)
}

func TestRead_BadHeader(t *testing.T) {
	data := "Activity Date,Affiliate Profile Site Id,Player Id,Deposit,Stakes,CPA Commission,Net Revenue,RevShare Commission,CPA Count,Registered Date,First Deposit Date,First CPA Date\n"

	_, err := Read(strings.NewReader(data), AccountSchema)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeSchema))
	assert.Contains(t, err.Error(), `"Deposit"`)
	assert.Contains(t, err.Error(), `"Deposits"`)
}

func TestRead_EmptyFile(t *testing.T) {
	_, err := Read(strings.NewReader(""), MemberSchema)
	assert.True(t, errors.HasCode(err, errors.ErrCodeSchema))
}

func TestRead_NetreferOptionalTurnover(t *testing.T) {
	data := "Marketing Source Name,Deposits,Net Revenue,Signups,First Time Depositing Customers,CPA Triggered,First Time Active Customers\n" +
		`PROM1,"$1,250.00",-$40.10,3,1,1,2` + "\n"

	_, err := Read(strings.NewReader(data), NetreferSchema)
	require.Error(t, err)

	table, err := Read(strings.NewReader(data), NetreferSchema, "Turnover")
	require.NoError(t, err)
	rows, err := NetreferRows(table)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "1250", rows[0].Deposit.String())
	assert.Equal(t, "-40.1", rows[0].NetRevenue.String())
	assert.True(t, rows[0].Stake.IsZero())
	assert.Equal(t, uint32(2), rows[0].WageringCount)
}

func TestRows_InvalidValueReportsLine(t *testing.T) {
	data := accountHeader + "2024-03-15,PROM1,P1,abc,0,0,0,0,0,,,\n"
	table, err := Read(strings.NewReader(data), AccountSchema)
	require.NoError(t, err)

	_, err = AccountRows(table)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeSchema))
	assert.Contains(t, err.Error(), "dòng 2")
}

func TestCheckActivityDate(t *testing.T) {
	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	other := day.AddDate(0, 0, -1)

	assert.NoError(t, CheckActivityDate("account", nil, day))
	assert.NoError(t, CheckActivityDate("account", []time.Time{day, day}, day))

	err := CheckActivityDate("account", []time.Time{day, other}, day)
	assert.True(t, errors.HasCode(err, errors.ErrCodeDate))

	err = CheckActivityDate("member", []time.Time{other}, day)
	assert.True(t, errors.HasCode(err, errors.ErrCodeDate))
}

func TestCheckFileName(t *testing.T) {
	assert.NoError(t, CheckFileName("report.CSV"))
	assert.True(t, errors.HasCode(CheckFileName("report.xlsx"), errors.ErrCodeSchema))
}
