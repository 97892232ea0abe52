package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"betenlace/models"
	"betenlace/services/accrual"
	"betenlace/utils"
)

// LoadLinks nạp toàn bộ link của campaign cùng BC, PLA (kèm Partner), BDR/PLDR của ngày day.
// withPriorMonth=true thì tính thêm tổng BDR các ngày trước trong tháng.
func (s *Store) LoadLinks(ctx context.Context, campaignID uint, day time.Time, withPriorMonth bool) (map[string]*accrual.LinkState, error) {
	db := s.db.WithContext(ctx)

	var links []*models.Link
	if err := db.Where("campaign_id = ?", campaignID).Find(&links).Error; err != nil {
		return nil, err
	}

	states := make(map[string]*accrual.LinkState, len(links))
	byID := make(map[uint]*accrual.LinkState, len(links))
	linkIDs := make([]uint, 0, len(links))
	var plaIDs []uint
	for _, link := range links {
		state := &accrual.LinkState{Link: link}
		states[link.PromCode] = state
		byID[link.ID] = state
		linkIDs = append(linkIDs, link.ID)
		if link.PartnerLinkAccumulatedID != nil {
			plaIDs = append(plaIDs, *link.PartnerLinkAccumulatedID)
		}
	}
	if len(linkIDs) == 0 {
		return states, nil
	}

	for _, ids := range chunks(linkIDs, s.batchSize) {
		var bcs []*models.BetenlaceCPA
		if err := db.Where("link_id IN ?", ids).Find(&bcs).Error; err != nil {
			return nil, err
		}
		for _, bc := range bcs {
			byID[bc.LinkID].BetenlaceCPA = bc
		}

		var bdrs []*models.BetenlaceDailyReport
		if err := db.Where("link_id IN ? AND day = ?", ids, day).Find(&bdrs).Error; err != nil {
			return nil, err
		}
		for _, bdr := range bdrs {
			byID[bdr.LinkID].DailyReport = bdr
		}
	}

	plas := make(map[uint]*models.PartnerLinkAccumulated, len(plaIDs))
	for _, ids := range chunks(plaIDs, s.batchSize) {
		var rows []*models.PartnerLinkAccumulated
		if err := db.Preload("Partner").Where("id IN ?", ids).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, pla := range rows {
			plas[pla.ID] = pla
		}
	}
	for _, state := range states {
		if id := state.Link.PartnerLinkAccumulatedID; id != nil {
			state.PartnerLink = plas[*id]
		}
	}

	if err := s.loadPartnerDailies(ctx, byID); err != nil {
		return nil, err
	}

	if withPriorMonth {
		if err := s.loadPriorMonth(ctx, linkIDs, day, byID); err != nil {
			return nil, err
		}
	}
	return states, nil
}

func (s *Store) loadPartnerDailies(ctx context.Context, byID map[uint]*accrual.LinkState) error {
	byDaily := make(map[uint]*accrual.LinkState)
	var bdrIDs []uint
	for _, state := range byID {
		if state.DailyReport != nil && state.PartnerLink != nil {
			byDaily[state.DailyReport.ID] = state
			bdrIDs = append(bdrIDs, state.DailyReport.ID)
		}
	}

	for _, ids := range chunks(bdrIDs, s.batchSize) {
		var rows []*models.PartnerLinkDailyReport
		if err := s.db.WithContext(ctx).Where("betenlace_daily_report_id IN ?", ids).Find(&rows).Error; err != nil {
			return err
		}
		for _, pldr := range rows {
			state := byDaily[pldr.BetenlaceDailyReportID]
			if state != nil && state.PartnerLink.ID == pldr.PartnerLinkAccumulatedID {
				state.PartnerDaily = pldr
			}
		}
	}
	return nil
}

type monthTotalsRow struct {
	LinkID            uint
	Deposit           decimal.Decimal
	Stake             decimal.Decimal
	NetRevenue        decimal.Decimal
	RegisteredCount   int64
	CPACount          int64
	FirstDepositCount int64
	WageringCount     int64
}

func (s *Store) loadPriorMonth(ctx context.Context, linkIDs []uint, day time.Time, byID map[uint]*accrual.LinkState) error {
	monthStart := utils.MonthStart(day)
	if !monthStart.Before(day) {
		return nil
	}

	for _, ids := range chunks(linkIDs, s.batchSize) {
		var rows []monthTotalsRow
		err := s.db.WithContext(ctx).
			Model(&models.BetenlaceDailyReport{}).
			Select(`link_id,
				COALESCE(SUM(deposit), 0) AS deposit,
				COALESCE(SUM(stake), 0) AS stake,
				COALESCE(SUM(net_revenue), 0) AS net_revenue,
				COALESCE(SUM(registered_count), 0) AS registered_count,
				COALESCE(SUM(cpa_count), 0) AS cpa_count,
				COALESCE(SUM(first_deposit_count), 0) AS first_deposit_count,
				COALESCE(SUM(wagering_count), 0) AS wagering_count`).
			Where("link_id IN ? AND day >= ? AND day < ?", ids, monthStart, day).
			Group("link_id").
			Scan(&rows).Error
		if err != nil {
			return err
		}
		for _, row := range rows {
			state := byID[row.LinkID]
			if state == nil {
				continue
			}
			state.PriorMonth = accrual.MonthTotals{
				Deposit:           row.Deposit,
				Stake:             row.Stake,
				NetRevenue:        row.NetRevenue,
				RegisteredCount:   toCount(row.RegisteredCount),
				CPACount:          toCount(row.CPACount),
				FirstDepositCount: toCount(row.FirstDepositCount),
				WageringCount:     toCount(row.WageringCount),
			}
		}
	}
	return nil
}

// LoadAccounts nạp AR theo (link, punter) cùng ADR của ngày day
func (s *Store) LoadAccounts(ctx context.Context, keys []accrual.AccountKey, day time.Time) (map[accrual.AccountKey]*accrual.AccountState, error) {
	db := s.db.WithContext(ctx)
	states := make(map[accrual.AccountKey]*accrual.AccountState, len(keys))

	punterSet := make(map[string]bool, len(keys))
	linkSet := make(map[uint]bool)
	var punters []string
	var linkIDs []uint
	for _, key := range keys {
		if !punterSet[key.PunterID] {
			punterSet[key.PunterID] = true
			punters = append(punters, key.PunterID)
		}
		if !linkSet[key.LinkID] {
			linkSet[key.LinkID] = true
			linkIDs = append(linkIDs, key.LinkID)
		}
	}
	if len(punters) == 0 {
		return states, nil
	}

	byID := make(map[uint]*accrual.AccountState)
	var accountIDs []uint
	for _, batch := range chunks(punters, s.batchSize) {
		var rows []*models.AccountReport
		if err := db.Where("link_id IN ? AND punter_id IN ?", linkIDs, batch).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, ar := range rows {
			state := &accrual.AccountState{Account: ar}
			states[accrual.AccountKey{LinkID: ar.LinkID, PunterID: ar.PunterID}] = state
			byID[ar.ID] = state
			accountIDs = append(accountIDs, ar.ID)
		}
	}

	for _, ids := range chunks(accountIDs, s.batchSize) {
		var rows []*models.AccountDailyReport
		if err := db.Where("account_report_id IN ? AND day = ?", ids, day).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, adr := range rows {
			if state := byID[adr.AccountReportID]; state != nil {
				state.Daily = adr
			}
		}
	}
	return states, nil
}

func toCount(v int64) uint32 {
	if v < 0 {
		return 0
	}
	return uint32(v)
}
