package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betenlace/constants"
	"betenlace/errors"
)

func TestParseIngestors(t *testing.T) {
	ingestors, err := ParseIngestors([]byte(`
ingestors:
  - name: yajuego
    kind: account
    campaigns:
      - title: yajuego 50
        revenue_share_percentage: 0.4
        cpa_condition_from_revenue_share: 17500
  - name: netrefer
    kind: netrefer
    campaigns:
      - title: zamba col
        revenue_share_percentage: "0.5"
        optional_columns: [Turnover]
`))
	require.NoError(t, err)
	require.Len(t, ingestors, 2)

	yajuego := ingestors[0].Campaigns[0]
	assert.Equal(t, "0.4", yajuego.RevenueSharePercentage.String())
	assert.Equal(t, "17500", yajuego.CPACondition.String())
	assert.Equal(t, constants.NetRevenueSourceNetRevenue, yajuego.NetRevenueSource)

	zamba := ingestors[1].Campaigns[0]
	assert.Equal(t, constants.NetRevenueSourceRevenueShare, zamba.NetRevenueSource)
	assert.Equal(t, []string{"Turnover"}, zamba.OptionalColumns)
}

func TestParseIngestors_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code errors.ErrorCode
	}{
		{"yaml hỏng", "ingestors: [", errors.ErrCodeInvalidFormat},
		{"thiếu ingestor", "ingestors: []", errors.ErrCodeValidation},
		{"kind sai", "ingestors:\n  - name: a\n    kind: ftp\n    campaigns:\n      - title: x\n", errors.ErrCodeValidation},
		{"thiếu title", "ingestors:\n  - name: a\n    kind: account\n    campaigns:\n      - revenue_share_percentage: 0.4\n", errors.ErrCodeValidation},
		{"trùng tên", "ingestors:\n  - name: a\n    kind: account\n    campaigns:\n      - title: x\n  - name: a\n    kind: netrefer\n    campaigns:\n      - title: y\n", errors.ErrCodeValidation},
		{"phần trăm > 1", "ingestors:\n  - name: a\n    kind: account\n    campaigns:\n      - title: x\n        revenue_share_percentage: 1.5\n", errors.ErrCodeValidation},
		{"điều kiện âm", "ingestors:\n  - name: a\n    kind: account\n    campaigns:\n      - title: x\n        cpa_condition_from_revenue_share: -1\n", errors.ErrCodeValidation},
		{"nguồn net revenue sai", "ingestors:\n  - name: a\n    kind: account\n    campaigns:\n      - title: x\n        net_revenue_source: gross\n", errors.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIngestors([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.code), "got %v", err)
		})
	}
}

func TestLoadIngestors(t *testing.T) {
	ingestors, err := LoadIngestors("ingestors.yaml")
	require.NoError(t, err)
	assert.NotEmpty(t, ingestors)

	path := filepath.Join(t.TempDir(), "missing.yaml")
	_, err = LoadIngestors(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("ingestors:\n  - name: a\n    kind: account\n    campaigns:\n      - title: x\n"), 0o600))
	ingestors, err = LoadIngestors(path)
	require.NoError(t, err)
	assert.Equal(t, "a", ingestors[0].Name)
}
