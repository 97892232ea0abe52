package ingest

import (
	"context"
	"fmt"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"

	"betenlace/errors"
	"betenlace/models"
)

// normalizeTitle bỏ dấu, chữ thường, gộp khoảng trắng: "  Zamba  Cól " -> "zamba col"
func normalizeTitle(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(unidecode.Unidecode(s))), " ")
}

// resolveCampaign tìm campaign theo tên "<bookmaker> <title>" hoặc alias, không phân biệt hoa thường
func (s *Service) resolveCampaign(ctx context.Context, title string) (*models.Campaign, error) {
	campaigns, err := s.repo.Campaigns(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi truy vấn campaign", err)
	}

	want := normalizeTitle(title)
	names := make([]string, 0, len(campaigns))
	for i := range campaigns {
		c := &campaigns[i]
		name := normalizeTitle(c.Name())
		if name == want {
			return c, nil
		}
		for _, alias := range c.Aliases {
			if normalizeTitle(alias) == want {
				return c, nil
			}
		}
		names = append(names, name)
	}

	msg := fmt.Sprintf("không tìm thấy campaign %q", title)
	if len(names) > 0 {
		if suggestion := closestmatch.New(names, []int{2, 3}).Closest(want); suggestion != "" {
			msg += fmt.Sprintf(" (có phải %q?)", suggestion)
		}
	}
	return nil, errors.NewAppError(errors.ErrCodeCampaignNotFound, msg, nil)
}
