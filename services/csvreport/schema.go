package csvreport

// Tên field nội bộ sau khi đổi tên cột CSV
const (
	FieldActivityDate      = "activity_date"
	FieldPromCode          = "prom_code"
	FieldPunterID          = "punter_id"
	FieldDeposit           = "deposit"
	FieldStake             = "stake"
	FieldCPACommission     = "cpa_commission"
	FieldNetRevenue        = "net_revenue"
	FieldRevenueShare      = "revenue_share"
	FieldCPACount          = "cpa_count"
	FieldRegisteredAt      = "registered_at"
	FieldFirstDepositAt    = "first_deposit_at"
	FieldCPAAt             = "cpa_at"
	FieldRegisteredCount   = "registered_count"
	FieldFirstDepositCount = "first_deposit_count"
	FieldWageringCount     = "wagering_count"
)

// Column ánh xạ tên cột trong file sang field nội bộ
type Column struct {
	Header string
	Field  string
}

// Schema là bảng đổi tên cột cố định của một loại file
type Schema struct {
	Name    string
	Columns []Column
}

// Headers trả về danh sách tên cột theo thứ tự khai báo
func (s Schema) Headers() []string {
	headers := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		headers[i] = col.Header
	}
	return headers
}

func (s Schema) fieldOf(header string) (string, bool) {
	for _, col := range s.Columns {
		if col.Header == header {
			return col.Field, true
		}
	}
	return "", false
}

var AccountSchema = Schema{
	Name: "account",
	Columns: []Column{
		{Header: "Activity Date", Field: FieldActivityDate},
		{Header: "Affiliate Profile Site Id", Field: FieldPromCode},
		{Header: "Player Id", Field: FieldPunterID},
		{Header: "Deposits", Field: FieldDeposit},
		{Header: "Stakes", Field: FieldStake},
		{Header: "CPA Commission", Field: FieldCPACommission},
		{Header: "Net Revenue", Field: FieldNetRevenue},
		{Header: "RevShare Commission", Field: FieldRevenueShare},
		{Header: "CPA Count", Field: FieldCPACount},
		{Header: "Registered Date", Field: FieldRegisteredAt},
		{Header: "First Deposit Date", Field: FieldFirstDepositAt},
		{Header: "First CPA Date", Field: FieldCPAAt},
	},
}

var MemberSchema = Schema{
	Name: "member",
	Columns: []Column{
		{Header: "Activity Date", Field: FieldActivityDate},
		{Header: "Affiliate Profile Site Id", Field: FieldPromCode},
		{Header: "Deposits", Field: FieldDeposit},
		{Header: "Stakes", Field: FieldStake},
		{Header: "CPA Commission", Field: FieldCPACommission},
		{Header: "Net Revenue", Field: FieldNetRevenue},
		{Header: "RevShare Commission", Field: FieldRevenueShare},
		{Header: "Signups", Field: FieldRegisteredCount},
		{Header: "CPA Count", Field: FieldCPACount},
		{Header: "FTD Count", Field: FieldFirstDepositCount},
		{Header: "Wagering Accounts", Field: FieldWageringCount},
	},
}

var NetreferSchema = Schema{
	Name: "netrefer",
	Columns: []Column{
		{Header: "Marketing Source Name", Field: FieldPromCode},
		{Header: "Deposits", Field: FieldDeposit},
		{Header: "Turnover", Field: FieldStake},
		{Header: "Net Revenue", Field: FieldNetRevenue},
		{Header: "Signups", Field: FieldRegisteredCount},
		{Header: "First Time Depositing Customers", Field: FieldFirstDepositCount},
		{Header: "CPA Triggered", Field: FieldCPACount},
		{Header: "First Time Active Customers", Field: FieldWageringCount},
	},
}
