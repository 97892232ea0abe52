package ingest

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"betenlace/config"
	"betenlace/constants"
	"betenlace/dto"
	"betenlace/errors"
	"betenlace/services/accrual"
	"betenlace/services/csvreport"
	"betenlace/services/metrics"
)

// AccountUpload là một lần upload của ingestor loại account (file account và/hoặc member)
type AccountUpload struct {
	Ingestor      string
	CampaignTitle string
	Date          string
	Account       *File
	Member        *File
}

// IngestAccount xử lý upload account+member: xét CPA từng người chơi rồi cộng dồn theo link
func (s *Service) IngestAccount(ctx context.Context, upload AccountUpload) (summary *dto.UploadSummary, err error) {
	run := s.newRun(constants.IngestorKindAccount, upload.Ingestor)
	defer func() {
		metrics.ObserveUpload(run.variant, err, run.started)
		if err != nil {
			run.logger.Error("❌ Upload thất bại: %v", err)
		}
	}()

	ing, err := s.ingestorOfKind(upload.Ingestor, constants.IngestorKindAccount)
	if err != nil {
		return nil, err
	}
	campaignCfg, err := allowedCampaign(ing, upload.CampaignTitle)
	if err != nil {
		return nil, err
	}
	day, err := s.resolveDay(upload.Date)
	if err != nil {
		return nil, err
	}
	if upload.Account == nil && upload.Member == nil {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "cần ít nhất một file account hoặc member", nil)
	}

	accountRows, memberRows, err := parseAccountFiles(upload, campaignCfg, day)
	if err != nil {
		return nil, err
	}

	campaign, err := s.resolveCampaign(ctx, campaignCfg.Title)
	if err != nil {
		return nil, err
	}
	run.bind(campaign, day)
	run.addFile("account", upload.Account)
	run.addFile("member", upload.Member)
	run.summary.MemberRows = len(memberRows)

	release, err := s.prepare(ctx, run, false)
	if err != nil {
		return nil, err
	}
	defer release()

	engine := accrual.NewEngine(campaign, day, s.settings(campaignCfg), run.converter, run.logger)
	if upload.Account == nil {
		engine.KeepStoredCPACount()
	}

	if err := s.applyAccounts(ctx, run, engine, accountRows); err != nil {
		return nil, err
	}

	for _, row := range memberRows {
		link := run.lookupLink(row.PromCode, row.Line)
		if link == nil {
			continue
		}
		engine.ApplyMember(link, row)
		run.summary.ProcessedMembers++
	}

	// link có tài khoản đạt CPA nhưng không có dòng member vẫn phải ghi nhận CPA
	for _, promCode := range engine.PendingPromCodes(run.links) {
		run.logger.Warn("prom_code %s có %d CPA nhưng không có trong file member", promCode, len(engine.Qualified(promCode)))
		engine.ApplyQualifiedOnly(run.links[promCode])
	}

	if err := s.commit(ctx, run, engine); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "lỗi ghi dữ liệu upload", err)
	}
	return s.finish(ctx, run, engine), nil
}

func (s *Service) applyAccounts(ctx context.Context, run *runState, engine *accrual.Engine, rows []dto.AccountRow) error {
	if len(rows) == 0 {
		return nil
	}

	type pending struct {
		row  dto.AccountRow
		link *accrual.LinkState
	}
	valid := make([]pending, 0, len(rows))
	keys := make([]accrual.AccountKey, 0, len(rows))
	for _, row := range rows {
		link := run.lookupLink(row.PromCode, row.Line)
		if link == nil {
			continue
		}
		valid = append(valid, pending{row: row, link: link})
		keys = append(keys, accrual.AccountKey{LinkID: link.Link.ID, PunterID: row.PunterID})
	}

	accounts, err := s.repo.LoadAccounts(ctx, keys, run.day)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "lỗi nạp account_report", err)
	}

	for _, p := range valid {
		key := accrual.AccountKey{LinkID: p.link.Link.ID, PunterID: p.row.PunterID}
		acc := accounts[key]
		if acc == nil {
			acc = accrual.NewAccountState(key.LinkID, key.PunterID)
			accounts[key] = acc
		}
		engine.ApplyAccount(p.link, acc, p.row)
		run.summary.AccountRows++
	}
	return nil
}

// parseAccountFiles kiểm tra định dạng, ngày và cpa_count của hai file trước khi chạm DB
func parseAccountFiles(upload AccountUpload, c *config.CampaignConfig, day time.Time) ([]dto.AccountRow, []dto.MemberRow, error) {
	var accountRows []dto.AccountRow
	var memberRows []dto.MemberRow

	if upload.Account != nil {
		table, err := readTable(upload.Account, csvreport.AccountSchema, c.OptionalColumns)
		if err != nil {
			return nil, nil, err
		}
		if accountRows, err = csvreport.AccountRows(table); err != nil {
			return nil, nil, err
		}
		if err := csvreport.CheckActivityDate("account", csvreport.AccountDates(accountRows), day); err != nil {
			return nil, nil, err
		}
		for _, row := range accountRows {
			if row.CPACount != 0 {
				return nil, nil, errors.NewAppError(errors.ErrCodeFeedCPACount,
					fmt.Sprintf("file account dòng %d có CPA Count = %d, phải bằng 0", row.Line, row.CPACount), nil)
			}
		}
	}

	if upload.Member != nil {
		table, err := readTable(upload.Member, csvreport.MemberSchema, c.OptionalColumns)
		if err != nil {
			return nil, nil, err
		}
		if memberRows, err = csvreport.MemberRows(table); err != nil {
			return nil, nil, err
		}
		if err := csvreport.CheckActivityDate("member", csvreport.MemberDates(memberRows), day); err != nil {
			return nil, nil, err
		}
	}
	return accountRows, memberRows, nil
}

func readTable(file *File, schema csvreport.Schema, optional []string) (*csvreport.Table, error) {
	if err := csvreport.CheckFileName(file.Name); err != nil {
		return nil, err
	}
	return csvreport.Read(bytes.NewReader(file.Data), schema, optional...)
}
