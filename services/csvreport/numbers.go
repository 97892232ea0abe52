package csvreport

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"betenlace/constants"
)

// ParseDecimal parse số thập phân ASCII (file account/member); chuỗi rỗng là 0
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// ParseMoney parse tiền của netrefer: bỏ ký hiệu tiền tệ ở đầu và dấu phẩy hàng nghìn.
// Chấp nhận "$1,234.50", "-$12", "$-12", "(12.00)", "S/ 1,000".
func ParseMoney(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	var digits strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.':
			digits.WriteRune(r)
		case r == ',' || unicode.IsSpace(r):
		case r == '-':
			if digits.Len() > 0 {
				return decimal.Zero, fmt.Errorf("số tiền không hợp lệ %q", s)
			}
			negative = true
		default:
			if digits.Len() > 0 {
				return decimal.Zero, fmt.Errorf("số tiền không hợp lệ %q", s)
			}
		}
	}
	if digits.Len() == 0 {
		return decimal.Zero, fmt.Errorf("số tiền không hợp lệ %q", s)
	}

	value, err := decimal.NewFromString(digits.String())
	if err != nil {
		return decimal.Zero, err
	}
	if negative {
		value = value.Neg()
	}
	return value, nil
}

// ParseCount parse số đếm uint32; chấp nhận "1,234" và "12.0"
func ParseCount(s string) (uint32, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, nil
	}
	if strings.Contains(s, ".") {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return 0, err
		}
		if !d.Equal(d.Truncate(0)) {
			return 0, fmt.Errorf("số đếm không phải số nguyên %q", s)
		}
		s = d.Truncate(0).String()
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}

// ParseDate parse "YYYY-MM-DD"; chuỗi rỗng trả về nil
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(constants.DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
