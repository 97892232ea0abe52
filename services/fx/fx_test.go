package fx

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betenlace/errors"
	"betenlace/models"
	"betenlace/services/logger"
)

type stubSource struct {
	first, last *models.FxPartner
	err         error
	calls       []time.Time
}

func (s *stubSource) FirstFxFrom(_ context.Context, from time.Time) (*models.FxPartner, error) {
	s.calls = append(s.calls, from)
	return s.first, s.err
}

func (s *stubSource) LastFxUntil(_ context.Context, until time.Time) (*models.FxPartner, error) {
	s.calls = append(s.calls, until)
	return s.last, s.err
}

func TestResolve(t *testing.T) {
	bogota, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)
	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	t.Run("ưu tiên snapshot từ nửa đêm trở đi", func(t *testing.T) {
		src := &stubSource{first: &models.FxPartner{ID: 1}, last: &models.FxPartner{ID: 2}}
		snapshot, err := Resolve(context.Background(), src, day, bogota)
		require.NoError(t, err)
		assert.Equal(t, uint(1), snapshot.ID)
		require.Len(t, src.calls, 1)
		assert.True(t, src.calls[0].Equal(time.Date(2024, time.March, 15, 5, 0, 0, 0, time.UTC)))
	})

	t.Run("không có bản sau thì lấy bản trước", func(t *testing.T) {
		src := &stubSource{last: &models.FxPartner{ID: 2}}
		snapshot, err := Resolve(context.Background(), src, day, bogota)
		require.NoError(t, err)
		assert.Equal(t, uint(2), snapshot.ID)
		assert.Len(t, src.calls, 2)
	})

	t.Run("không có snapshot nào", func(t *testing.T) {
		_, err := Resolve(context.Background(), &stubSource{}, day, bogota)
		assert.True(t, errors.HasCode(err, errors.ErrCodeFxMissing))
	})

	t.Run("lỗi DB", func(t *testing.T) {
		_, err := Resolve(context.Background(), &stubSource{err: fmt.Errorf("boom")}, day, bogota)
		assert.True(t, errors.HasCode(err, errors.ErrCodeDBError))
	})
}

func TestConverterRate(t *testing.T) {
	c := NewConverter(&models.FxPartner{
		ID:           7,
		FxPercentage: decimal.RequireFromString("0.95"),
		Rates:        models.FxRates{"fx_cop_usd": decimal.RequireFromString("0.00025")},
	}, logger.NewNopLogger())

	assert.True(t, decimal.NewFromInt(1).Equal(c.Rate("COP", "cop")))
	assert.True(t, decimal.RequireFromString("0.0002375").Equal(c.Rate("COP", "USD")))
	assert.Empty(t, c.MissingPairs())

	assert.True(t, decimal.NewFromInt(1).Equal(c.Rate("PEN", "USD")))
	assert.True(t, decimal.NewFromInt(1).Equal(c.Rate("PEN", "USD")))
	assert.Equal(t, []string{"fx_pen_usd"}, c.MissingPairs())
	assert.Equal(t, uint(7), c.Snapshot().ID)
}

func TestFxRatesScan(t *testing.T) {
	var rates models.FxRates
	require.NoError(t, rates.Scan([]byte(`{"fx_usd_cop":"4000.5"}`)))
	rate, ok := (&models.FxPartner{Rates: rates}).Rate("USD", "COP")
	require.True(t, ok)
	assert.Equal(t, "4000.5", rate.String())

	require.NoError(t, rates.Scan(nil))
	assert.Empty(t, rates)
	assert.Error(t, rates.Scan(42))
}
