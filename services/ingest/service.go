package ingest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"betenlace/config"
	"betenlace/errors"
	"betenlace/models"
	"betenlace/services/accrual"
	"betenlace/services/archive"
	"betenlace/services/cache"
	"betenlace/services/fx"
	"betenlace/services/lock"
	"betenlace/services/logger"
	"betenlace/services/notification"
	"betenlace/utils"
)

// Repository là phần truy cập dữ liệu mà pipeline cần
type Repository interface {
	fx.Source
	Campaigns(ctx context.Context) ([]models.Campaign, error)
	LoadLinks(ctx context.Context, campaignID uint, day time.Time, withPriorMonth bool) (map[string]*accrual.LinkState, error)
	LoadAccounts(ctx context.Context, keys []accrual.AccountKey, day time.Time) (map[accrual.AccountKey]*accrual.AccountState, error)
	HasDailyReport(ctx context.Context, campaignID uint, day time.Time) (bool, error)
	Persist(ctx context.Context, campaignID uint, day time.Time, changes *accrual.ChangeSet) error
}

// File là một file CSV được upload
type File struct {
	Name string
	Data []byte
}

type ServiceOptions struct {
	Repo             Repository
	Locker           lock.Locker
	Cache            cache.StatusCache
	Notifier         notification.Service
	Archiver         archive.Archiver
	Logger           logger.Logger
	Ingestors        []config.IngestorConfig
	Location         *time.Location
	MinCPATrackerDay uint32
	Now              func() time.Time
}

// Service điều phối một lần upload: kiểm tra file, khóa, tính toán trong bộ nhớ, ghi DB một lần
type Service struct {
	repo             Repository
	locker           lock.Locker
	cache            cache.StatusCache
	notifier         notification.Service
	archiver         archive.Archiver
	logger           logger.Logger
	ingestors        []config.IngestorConfig
	location         *time.Location
	minCPATrackerDay uint32
	now              func() time.Time
}

func NewService(opts ServiceOptions) *Service {
	s := &Service{
		repo:             opts.Repo,
		locker:           opts.Locker,
		cache:            opts.Cache,
		notifier:         opts.Notifier,
		archiver:         opts.Archiver,
		logger:           opts.Logger,
		ingestors:        opts.Ingestors,
		location:         opts.Location,
		minCPATrackerDay: opts.MinCPATrackerDay,
		now:              opts.Now,
	}
	if s.locker == nil {
		s.locker = lock.NewLocalLocker()
	}
	if s.cache == nil {
		s.cache = cache.NewMemoryStatusCache()
	}
	if s.archiver == nil {
		s.archiver = archive.NopArchiver{}
	}
	if s.logger == nil {
		s.logger = logger.NewNopLogger()
	}
	if s.location == nil {
		s.location = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Ingestor trả về cấu hình ingestor theo tên
func (s *Service) Ingestor(name string) (*config.IngestorConfig, error) {
	for i := range s.ingestors {
		if strings.EqualFold(s.ingestors[i].Name, name) {
			return &s.ingestors[i], nil
		}
	}
	return nil, errors.NewAppError(errors.ErrCodeIngestorNotFound, fmt.Sprintf("không có ingestor %q", name), nil)
}

func (s *Service) ingestorOfKind(name, kind string) (*config.IngestorConfig, error) {
	ing, err := s.Ingestor(name)
	if err != nil {
		return nil, err
	}
	if ing.Kind != kind {
		return nil, errors.NewAppError(errors.ErrCodeIngestorNotFound,
			fmt.Sprintf("ingestor %q là loại %s, không phải %s", name, ing.Kind, kind), nil)
	}
	return ing, nil
}

// allowedCampaign tìm campaign trong allow-list của ingestor; title rỗng chỉ hợp lệ khi ingestor có đúng một campaign
func allowedCampaign(ing *config.IngestorConfig, title string) (*config.CampaignConfig, error) {
	if strings.TrimSpace(title) == "" {
		if len(ing.Campaigns) == 1 {
			return &ing.Campaigns[0], nil
		}
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "campaign_title không được để trống", nil)
	}
	want := normalizeTitle(title)
	for i := range ing.Campaigns {
		if normalizeTitle(ing.Campaigns[i].Title) == want {
			return &ing.Campaigns[i], nil
		}
	}
	return nil, errors.NewAppError(errors.ErrCodeCampaignNotAllowed,
		fmt.Sprintf("campaign %q không thuộc ingestor %s", title, ing.Name), nil)
}

// resolveDay dùng ngày truyền vào, mặc định là hôm qua theo timezone nhà cái
func (s *Service) resolveDay(day string) (time.Time, error) {
	if strings.TrimSpace(day) == "" {
		return utils.Yesterday(s.now(), s.location), nil
	}
	parsed, err := utils.ParseDay(strings.TrimSpace(day))
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeDate, fmt.Sprintf("ngày %q không đúng định dạng YYYY-MM-DD", day), err)
	}
	return parsed, nil
}

func (s *Service) settings(c *config.CampaignConfig) accrual.Settings {
	return accrual.Settings{
		RevenueSharePercentage: c.RevenueSharePercentage,
		CPACondition:           c.CPACondition,
		NetRevenueSource:       c.NetRevenueSource,
		MinCPATrackerDay:       s.minCPATrackerDay,
	}
}

// prepare lấy khóa upload, chọn tỷ giá và nạp link của campaign
func (s *Service) prepare(ctx context.Context, run *runState, withPriorMonth bool) (func(), error) {
	release, err := s.locker.Acquire(ctx, run.campaign.ID, run.day)
	if err != nil {
		return nil, err
	}

	snapshot, err := fx.Resolve(ctx, s.repo, run.day, s.location)
	if err != nil {
		release()
		return nil, err
	}
	run.converter = fx.NewConverter(snapshot, run.logger)

	links, err := s.repo.LoadLinks(ctx, run.campaign.ID, run.day, withPriorMonth)
	if err != nil {
		release()
		return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi nạp link của campaign", err)
	}
	run.links = links

	for _, link := range links {
		if link.DailyReport != nil && link.DailyReport.CPACount != nil {
			run.summary.ReUpload = true
			break
		}
	}
	if run.summary.ReUpload {
		run.logger.Warn("⚠️ Campaign %s đã có dữ liệu ngày %s, upload lại sẽ thay thế giá trị cũ",
			run.campaign.Name(), utils.FormatDay(run.day))
	}
	return release, nil
}

// lookupLink trả về link của prom_code; thiếu link hoặc BC thì ghi log và bỏ qua dòng
func (run *runState) lookupLink(promCode string, line int) *accrual.LinkState {
	link := run.links[promCode]
	if link == nil {
		run.logger.Warn("Bỏ qua dòng %d: prom_code %s không thuộc campaign %s", line, promCode, run.campaign.Name())
		run.summary.SkippedRows++
		return nil
	}
	if link.BetenlaceCPA == nil {
		run.logger.Error("Bỏ qua dòng %d: link %s chưa có betenlace_cpa", line, promCode)
		run.summary.SkippedRows++
		return nil
	}
	return link
}
