package ingest

import (
	"context"

	"betenlace/constants"
	"betenlace/dto"
	"betenlace/errors"
	"betenlace/services/accrual"
	"betenlace/services/csvreport"
	"betenlace/services/metrics"
)

// NetreferUpload là một lần upload file netrefer (số lũy kế tháng theo link)
type NetreferUpload struct {
	Ingestor      string
	CampaignTitle string
	UploadDate    string
	Data          *File
}

// IngestNetrefer đổi số lũy kế tháng thành số ngày rồi cộng dồn theo link
func (s *Service) IngestNetrefer(ctx context.Context, upload NetreferUpload) (summary *dto.UploadSummary, err error) {
	run := s.newRun(constants.IngestorKindNetrefer, upload.Ingestor)
	defer func() {
		metrics.ObserveUpload(run.variant, err, run.started)
		if err != nil {
			run.logger.Error("❌ Upload thất bại: %v", err)
		}
	}()

	ing, err := s.ingestorOfKind(upload.Ingestor, constants.IngestorKindNetrefer)
	if err != nil {
		return nil, err
	}
	if upload.CampaignTitle == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "campaign_title không được để trống", nil)
	}
	campaignCfg, err := allowedCampaign(ing, upload.CampaignTitle)
	if err != nil {
		return nil, err
	}
	day, err := s.resolveDay(upload.UploadDate)
	if err != nil {
		return nil, err
	}
	if upload.Data == nil {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "thiếu file csv_data", nil)
	}

	table, err := readTable(upload.Data, csvreport.NetreferSchema, campaignCfg.OptionalColumns)
	if err != nil {
		return nil, err
	}
	rows, err := csvreport.NetreferRows(table)
	if err != nil {
		return nil, err
	}

	campaign, err := s.resolveCampaign(ctx, campaignCfg.Title)
	if err != nil {
		return nil, err
	}
	run.bind(campaign, day)
	run.addFile("netrefer", upload.Data)
	run.summary.MemberRows = len(rows)

	release, err := s.prepare(ctx, run, true)
	if err != nil {
		return nil, err
	}
	defer release()

	engine := accrual.NewEngine(campaign, day, s.settings(campaignCfg), run.converter, run.logger)
	for _, row := range rows {
		link := run.lookupLink(row.PromCode, row.Line)
		if link == nil {
			continue
		}
		engine.ApplyNetrefer(link, row)
		run.summary.ProcessedMembers++
	}

	if err := s.commit(ctx, run, engine); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi ghi dữ liệu upload", err)
	}
	return s.finish(ctx, run, engine), nil
}
