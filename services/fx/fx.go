package fx

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"betenlace/errors"
	"betenlace/models"
	"betenlace/services/logger"
	"betenlace/utils"
)

// Source đọc snapshot tỷ giá; trả về (nil, nil) khi không có bản ghi phù hợp
type Source interface {
	FirstFxFrom(ctx context.Context, from time.Time) (*models.FxPartner, error)
	LastFxUntil(ctx context.Context, until time.Time) (*models.FxPartner, error)
}

// Resolve chọn snapshot cho cả lần upload: bản sớm nhất từ 00:00 của day trở đi,
// nếu không có thì bản muộn nhất trước đó.
func Resolve(ctx context.Context, src Source, day time.Time, loc *time.Location) (*models.FxPartner, error) {
	midnight := utils.Midnight(day, loc)

	snapshot, err := src.FirstFxFrom(ctx, midnight)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi truy vấn fx_partner", err)
	}
	if snapshot != nil {
		return snapshot, nil
	}

	snapshot, err = src.LastFxUntil(ctx, midnight)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi truy vấn fx_partner", err)
	}
	if snapshot == nil {
		return nil, errors.NewAppError(errors.ErrCodeFxMissing,
			fmt.Sprintf("không có fx_partner cho ngày %s", utils.FormatDay(day)), nil)
	}
	return snapshot, nil
}

// Converter quy đổi tiền tệ theo một snapshot cố định
type Converter struct {
	snapshot *models.FxPartner
	logger   logger.Logger
	missing  map[string]bool
}

func NewConverter(snapshot *models.FxPartner, log logger.Logger) *Converter {
	return &Converter{
		snapshot: snapshot,
		logger:   log,
		missing:  make(map[string]bool),
	}
}

// Snapshot trả về snapshot đang dùng
func (c *Converter) Snapshot() *models.FxPartner {
	return c.snapshot
}

// Rate trả về hệ số from→to. Cùng tiền tệ là 1; ngược lại rate * fx_percentage.
// Cặp không tồn tại được log lỗi và coi như 1.
func (c *Converter) Rate(from, to string) decimal.Decimal {
	if strings.EqualFold(from, to) {
		return decimal.NewFromInt(1)
	}
	rate, ok := c.snapshot.Rate(from, to)
	if !ok {
		key := models.FxKey(from, to)
		if !c.missing[key] {
			c.missing[key] = true
			c.logger.Error("fx_partner %d không có cặp %s, dùng hệ số 1", c.snapshot.ID, key)
		}
		return decimal.NewFromInt(1)
	}
	return rate.Mul(c.snapshot.FxPercentage)
}

// MissingPairs trả về các cặp tỷ giá bị thiếu trong lần upload
func (c *Converter) MissingPairs() []string {
	pairs := make([]string, 0, len(c.missing))
	for key := range c.missing {
		pairs = append(pairs, key)
	}
	return pairs
}
