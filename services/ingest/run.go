package ingest

import (
	"context"
	"time"

	"github.com/google/uuid"

	"betenlace/dto"
	"betenlace/models"
	"betenlace/services/accrual"
	"betenlace/services/archive"
	"betenlace/services/fx"
	"betenlace/services/logger"
	"betenlace/services/metrics"
	"betenlace/services/notification"
	"betenlace/utils"
)

// runState là trạng thái của một lần upload
type runState struct {
	id        string
	variant   string
	started   time.Time
	day       time.Time
	campaign  *models.Campaign
	converter *fx.Converter
	links     map[string]*accrual.LinkState
	logger    logger.Logger
	summary   dto.UploadSummary
	files     []archive.File
}

func (s *Service) newRun(variant, ingestor string) *runState {
	id := uuid.NewString()
	return &runState{
		id:      id,
		variant: variant,
		started: s.now(),
		logger:  s.logger.With("run_id", id, "ingestor", ingestor),
		summary: dto.UploadSummary{RunID: id, Ingestor: ingestor},
	}
}

func (run *runState) bind(campaign *models.Campaign, day time.Time) {
	run.campaign = campaign
	run.day = day
	run.summary.Campaign = campaign.Name()
	run.summary.Day = utils.FormatDay(day)
	run.logger = run.logger.With("campaign", campaign.Name(), "day", run.summary.Day)
}

func (run *runState) addFile(field string, file *File) {
	if file == nil {
		return
	}
	run.files = append(run.files, archive.File{
		Day:   run.summary.Day,
		RunID: run.id,
		Field: field,
		Data:  file.Data,
	})
}

// commit ghi ChangeSet; lỗi ở đây làm hỏng cả lần upload
func (s *Service) commit(ctx context.Context, run *runState, engine *accrual.Engine) error {
	changes := engine.Changes()
	if changes.IsEmpty() {
		run.logger.Info("Không có thay đổi nào cần ghi")
		return nil
	}
	if err := s.repo.Persist(ctx, run.campaign.ID, run.day, changes); err != nil {
		return err
	}
	run.logger.Info("✅ Đã ghi %d AR, %d ADR, %d BDR, %d PLDR",
		len(changes.Accounts), len(changes.AccountDailies), len(changes.DailyReports), len(changes.PartnerDailies))
	return nil
}

// finish chạy sau khi commit: cache status, thông báo, lưu file gốc. Lỗi chỉ được log.
func (s *Service) finish(ctx context.Context, run *runState, engine *accrual.Engine) *dto.UploadSummary {
	run.summary.QualifiedCount = engine.QualifiedCount()
	run.summary.FinishedAt = s.now()
	run.summary.Message = notification.NewMessageBuilder(run.summary.Day, run.campaign.Name()).
		Processed(run.summary.ProcessedMembers).
		Build()

	if pairs := run.converter.MissingPairs(); len(pairs) > 0 {
		run.logger.Error("Thiếu tỷ giá %v trong fx_partner %d", pairs, run.converter.Snapshot().ID)
	}

	if err := s.cache.SaveStatus(ctx, normalizeTitle(run.campaign.Name()), run.summary); err != nil {
		run.logger.Warn("Không lưu được status upload: %v", err)
	}
	if s.notifier != nil {
		if err := s.notifier.SendMessage(ctx, run.summary.Message); err != nil {
			run.logger.Warn("Không gửi được thông báo: %v", err)
		}
	}
	for _, file := range run.files {
		file.Campaign = run.campaign.Name()
		url, err := s.archiver.Archive(ctx, file)
		if err != nil {
			run.logger.Warn("Không lưu được file %s: %v", file.Field, err)
			continue
		}
		if url != "" {
			run.logger.Info("Đã lưu file %s tại %s", file.Field, url)
		}
	}

	metrics.AddRows(run.variant, metrics.OutcomeProcessed, run.summary.AccountRows+run.summary.ProcessedMembers)
	metrics.AddRows(run.variant, metrics.OutcomeSkipped, run.summary.SkippedRows)
	metrics.AddRows(run.variant, metrics.OutcomeQualified, run.summary.QualifiedCount)

	summary := run.summary
	return &summary
}
