package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// FxRates lưu các cặp tỷ giá theo khóa "fx_<from>_<to>", ví dụ "fx_cop_usd"
type FxRates map[string]decimal.Decimal

// FxKey tạo khóa tỷ giá cho cặp tiền tệ
func FxKey(from, to string) string {
	return fmt.Sprintf("fx_%s_%s", strings.ToLower(from), strings.ToLower(to))
}

func (r FxRates) Value() (driver.Value, error) {
	if r == nil {
		return "{}", nil
	}
	data, err := json.Marshal(map[string]decimal.Decimal(r))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (r *FxRates) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*r = FxRates{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("fx rates: unsupported type %T", value)
	}
	rates := map[string]decimal.Decimal{}
	if err := json.Unmarshal(data, &rates); err != nil {
		return err
	}
	*r = rates
	return nil
}

// FxPartner là snapshot tỷ giá theo giờ
type FxPartner struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	FxPercentage decimal.Decimal `gorm:"type:decimal(10,6);not null;default:1" json:"fxPercentage"`
	Rates        FxRates         `gorm:"type:jsonb;not null;default:'{}'" json:"rates"`
	CreatedAt    time.Time       `gorm:"not null;index" json:"createdAt"`
}

// Rate trả về tỷ giá from→to nếu snapshot có cặp này
func (f *FxPartner) Rate(from, to string) (decimal.Decimal, bool) {
	rate, ok := f.Rates[FxKey(from, to)]
	return rate, ok
}
