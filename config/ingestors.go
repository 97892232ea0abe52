package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"betenlace/constants"
	"betenlace/errors"
	"betenlace/validator"
)

// CampaignConfig là cấu hình riêng của campaign trong một ingestor
type CampaignConfig struct {
	Title                  string          `yaml:"title" validate:"required"`
	RevenueSharePercentage decimal.Decimal `yaml:"revenue_share_percentage"`
	CPACondition           decimal.Decimal `yaml:"cpa_condition_from_revenue_share"`
	NetRevenueSource       string          `yaml:"net_revenue_source" validate:"omitempty,oneof=net_revenue revenue_share"`
	OptionalColumns        []string        `yaml:"optional_columns"`
}

// IngestorConfig là một nguồn upload; với netrefer danh sách campaigns là allow-list
type IngestorConfig struct {
	Name      string           `yaml:"name" validate:"required"`
	Kind      string           `yaml:"kind" validate:"required,oneof=account netrefer"`
	Campaigns []CampaignConfig `yaml:"campaigns" validate:"required,min=1,dive"`
}

type ingestorsFile struct {
	Ingestors []IngestorConfig `yaml:"ingestors" validate:"required,min=1,dive"`
}

// LoadIngestors đọc file YAML cấu hình ingestor
func LoadIngestors(path string) ([]IngestorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("không đọc được %s: %w", path, err)
	}
	return ParseIngestors(data)
}

// ParseIngestors parse, điền giá trị mặc định và validate cấu hình ingestor
func ParseIngestors(data []byte) ([]IngestorConfig, error) {
	var file ingestorsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "cấu hình ingestor không đúng định dạng YAML", err)
	}
	if err := validator.ValidateStruct(file); err != nil {
		return nil, err
	}

	names := make(map[string]bool, len(file.Ingestors))
	for i := range file.Ingestors {
		ing := &file.Ingestors[i]
		if names[ing.Name] {
			return nil, errors.NewAppError(errors.ErrCodeValidation, fmt.Sprintf("ingestor %q bị khai báo trùng", ing.Name), nil)
		}
		names[ing.Name] = true

		for j := range ing.Campaigns {
			c := &ing.Campaigns[j]
			if c.NetRevenueSource == "" {
				c.NetRevenueSource = defaultNetRevenueSource(ing.Kind)
			}
			if c.RevenueSharePercentage.IsNegative() || c.RevenueSharePercentage.GreaterThan(decimal.NewFromInt(1)) {
				return nil, errors.NewAppError(errors.ErrCodeValidation,
					fmt.Sprintf("ingestor %s campaign %s: revenue_share_percentage phải trong [0,1]", ing.Name, c.Title), nil)
			}
			if c.CPACondition.IsNegative() {
				return nil, errors.NewAppError(errors.ErrCodeValidation,
					fmt.Sprintf("ingestor %s campaign %s: cpa_condition_from_revenue_share không được âm", ing.Name, c.Title), nil)
			}
		}
	}
	return file.Ingestors, nil
}

func defaultNetRevenueSource(kind string) string {
	if kind == constants.IngestorKindNetrefer {
		return constants.NetRevenueSourceRevenueShare
	}
	return constants.NetRevenueSourceNetRevenue
}
