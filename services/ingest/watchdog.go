package ingest

import (
	"context"

	"betenlace/dto"
	"betenlace/errors"
	"betenlace/services/notification"
	"betenlace/utils"
)

// Watchdog kiểm tra ngày hôm qua: campaign đang active mà chưa có BDR nào thì gửi cảnh báo
func (s *Service) Watchdog(ctx context.Context) error {
	day := utils.Yesterday(s.now(), s.location)
	dayStr := utils.FormatDay(day)

	for i := range s.ingestors {
		ing := &s.ingestors[i]
		for j := range ing.Campaigns {
			title := ing.Campaigns[j].Title
			campaign, err := s.resolveCampaign(ctx, title)
			if errors.HasCode(err, errors.ErrCodeCampaignNotFound) {
				s.logger.Warn("Watchdog: ingestor %s cấu hình campaign %q không tồn tại", ing.Name, title)
				continue
			}
			if err != nil {
				return err
			}
			if !campaign.IsActive() {
				continue
			}

			has, err := s.repo.HasDailyReport(ctx, campaign.ID, day)
			if err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "lỗi kiểm tra betenlace_daily_report", err)
			}
			if has {
				continue
			}

			msg := notification.NewMessageBuilder(dayStr, campaign.Name()).Build()
			s.logger.Warn("Watchdog: %s", msg)
			if s.notifier != nil {
				if err := s.notifier.SendMessage(ctx, msg); err != nil {
					s.logger.Warn("Không gửi được thông báo: %v", err)
				}
			}
		}
	}
	return nil
}

// Status trả về kết quả upload gần nhất của campaign
func (s *Service) Status(ctx context.Context, campaign string) (*dto.UploadSummary, error) {
	summary, err := s.cache.LastStatus(ctx, normalizeTitle(campaign))
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "chưa có upload nào cho campaign "+campaign, nil)
	}
	return summary, nil
}
