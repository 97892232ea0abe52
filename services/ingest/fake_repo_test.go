package ingest

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"betenlace/models"
	"betenlace/services/accrual"
	"betenlace/utils"
)

type dailyKey struct {
	id  uint
	day time.Time
}

type partnerDailyKey struct {
	bdrID uint
	plaID uint
}

// memoryRepo giữ dữ liệu trong bộ nhớ; load/persist luôn copy struct như khi đi qua DB
type memoryRepo struct {
	nextID uint

	campaigns      []models.Campaign
	links          []*models.Link
	fxs            []*models.FxPartner
	bcs            map[uint]*models.BetenlaceCPA
	plas           map[uint]*models.PartnerLinkAccumulated
	accounts       map[accrual.AccountKey]*models.AccountReport
	accountDaily   map[dailyKey]*models.AccountDailyReport
	dailyReports   map[dailyKey]*models.BetenlaceDailyReport
	partnerDailies map[partnerDailyKey]*models.PartnerLinkDailyReport

	persistErr   error
	persistCalls int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		nextID:         1000,
		bcs:            make(map[uint]*models.BetenlaceCPA),
		plas:           make(map[uint]*models.PartnerLinkAccumulated),
		accounts:       make(map[accrual.AccountKey]*models.AccountReport),
		accountDaily:   make(map[dailyKey]*models.AccountDailyReport),
		dailyReports:   make(map[dailyKey]*models.BetenlaceDailyReport),
		partnerDailies: make(map[partnerDailyKey]*models.PartnerLinkDailyReport),
	}
}

func (r *memoryRepo) id() uint {
	r.nextID++
	return r.nextID
}

func (r *memoryRepo) Campaigns(context.Context) ([]models.Campaign, error) {
	out := make([]models.Campaign, len(r.campaigns))
	copy(out, r.campaigns)
	return out, nil
}

func (r *memoryRepo) FirstFxFrom(_ context.Context, from time.Time) (*models.FxPartner, error) {
	var best *models.FxPartner
	for _, fx := range r.fxs {
		if !fx.CreatedAt.Before(from) && (best == nil || fx.CreatedAt.Before(best.CreatedAt)) {
			best = fx
		}
	}
	return best, nil
}

func (r *memoryRepo) LastFxUntil(_ context.Context, until time.Time) (*models.FxPartner, error) {
	var best *models.FxPartner
	for _, fx := range r.fxs {
		if !fx.CreatedAt.After(until) && (best == nil || fx.CreatedAt.After(best.CreatedAt)) {
			best = fx
		}
	}
	return best, nil
}

func (r *memoryRepo) LoadLinks(_ context.Context, campaignID uint, day time.Time, withPriorMonth bool) (map[string]*accrual.LinkState, error) {
	states := make(map[string]*accrual.LinkState)
	for _, link := range r.links {
		if link.CampaignID != campaignID {
			continue
		}
		l := *link
		state := &accrual.LinkState{Link: &l}
		if bc, ok := r.bcs[link.ID]; ok {
			cp := *bc
			state.BetenlaceCPA = &cp
		}
		if link.PartnerLinkAccumulatedID != nil {
			if pla, ok := r.plas[*link.PartnerLinkAccumulatedID]; ok {
				cp := *pla
				state.PartnerLink = &cp
			}
		}
		if bdr, ok := r.dailyReports[dailyKey{link.ID, day}]; ok {
			cp := *bdr
			state.DailyReport = &cp
			if state.PartnerLink != nil {
				if pldr, ok := r.partnerDailies[partnerDailyKey{bdr.ID, state.PartnerLink.ID}]; ok {
					cp := *pldr
					state.PartnerDaily = &cp
				}
			}
		}
		if withPriorMonth {
			state.PriorMonth = r.priorMonth(link.ID, day)
		}
		states[link.PromCode] = state
	}
	return states, nil
}

func (r *memoryRepo) priorMonth(linkID uint, day time.Time) accrual.MonthTotals {
	var totals accrual.MonthTotals
	start := utils.MonthStart(day)
	for key, bdr := range r.dailyReports {
		if key.id != linkID || key.day.Before(start) || !key.day.Before(day) {
			continue
		}
		totals.Deposit = totals.Deposit.Add(bdr.Deposit)
		totals.Stake = totals.Stake.Add(bdr.Stake)
		totals.NetRevenue = totals.NetRevenue.Add(bdr.NetRevenue)
		totals.RegisteredCount += bdr.RegisteredCount
		totals.CPACount += bdr.CPACountValue()
		totals.FirstDepositCount += bdr.FirstDepositCount
		totals.WageringCount += bdr.WageringCount
	}
	return totals
}

func (r *memoryRepo) LoadAccounts(_ context.Context, keys []accrual.AccountKey, day time.Time) (map[accrual.AccountKey]*accrual.AccountState, error) {
	states := make(map[accrual.AccountKey]*accrual.AccountState)
	for _, key := range keys {
		ar, ok := r.accounts[key]
		if !ok {
			continue
		}
		cp := *ar
		state := &accrual.AccountState{Account: &cp}
		if adr, ok := r.accountDaily[dailyKey{ar.ID, day}]; ok {
			dcp := *adr
			state.Daily = &dcp
		}
		states[key] = state
	}
	return states, nil
}

func (r *memoryRepo) HasDailyReport(_ context.Context, campaignID uint, day time.Time) (bool, error) {
	for _, link := range r.links {
		if link.CampaignID != campaignID {
			continue
		}
		if _, ok := r.dailyReports[dailyKey{link.ID, day}]; ok {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepo) Persist(_ context.Context, _ uint, _ time.Time, changes *accrual.ChangeSet) error {
	r.persistCalls++
	if r.persistErr != nil {
		return r.persistErr
	}

	for _, ar := range changes.Accounts {
		if ar.ID == 0 {
			ar.ID = r.id()
		}
		cp := *ar
		r.accounts[accrual.AccountKey{LinkID: ar.LinkID, PunterID: ar.PunterID}] = &cp
	}
	for _, p := range changes.AccountDailies {
		p.Daily.AccountReportID = p.Account.ID
		if p.Daily.ID == 0 {
			p.Daily.ID = r.id()
		}
		cp := *p.Daily
		r.accountDaily[dailyKey{cp.AccountReportID, cp.Day}] = &cp
	}
	for _, bc := range changes.BetenlaceCPAs {
		cp := *bc
		r.bcs[bc.LinkID] = &cp
	}
	for _, bdr := range changes.DailyReports {
		if bdr.ID == 0 {
			bdr.ID = r.id()
		}
		cp := *bdr
		r.dailyReports[dailyKey{bdr.LinkID, bdr.Day}] = &cp
	}
	for _, pla := range changes.PartnerLinks {
		cp := *pla
		r.plas[pla.ID] = &cp
	}
	for _, p := range changes.PartnerDailies {
		p.PartnerDaily.BetenlaceDailyReportID = p.DailyReport.ID
		if p.PartnerDaily.ID == 0 {
			p.PartnerDaily.ID = r.id()
		}
		cp := *p.PartnerDaily
		r.partnerDailies[partnerDailyKey{cp.BetenlaceDailyReportID, cp.PartnerLinkAccumulatedID}] = &cp
	}
	return nil
}

func (r *memoryRepo) account(linkID uint, punter string) *models.AccountReport {
	return r.accounts[accrual.AccountKey{LinkID: linkID, PunterID: punter}]
}

func (r *memoryRepo) dailyReport(linkID uint, day time.Time) *models.BetenlaceDailyReport {
	return r.dailyReports[dailyKey{linkID, day}]
}

func (r *memoryRepo) partnerDaily(linkID uint, day time.Time, plaID uint) *models.PartnerLinkDailyReport {
	bdr := r.dailyReport(linkID, day)
	if bdr == nil {
		return nil
	}
	return r.partnerDailies[partnerDailyKey{bdr.ID, plaID}]
}

// dump chụp trạng thái dưới dạng chuỗi để so sánh giữa các lần ingest
func (r *memoryRepo) dump() []string {
	var out []string
	s := func(d decimal.Decimal) string { return d.String() }
	for key, ar := range r.accounts {
		out = append(out, "AR "+key.PunterID+" "+s(ar.Deposit)+" "+s(ar.Stake)+" "+s(ar.NetRevenue)+" "+
			s(ar.RevenueShare)+" "+s(ar.RevenueShareCPA)+" "+s(ar.FixedIncome)+" "+
			decimal.NewFromInt(int64(ar.CPABetenlace)).String()+decimal.NewFromInt(int64(ar.CPAPartner)).String())
	}
	for key, adr := range r.accountDaily {
		out = append(out, "ADR "+utils.FormatDay(key.day)+" "+s(adr.Deposit)+" "+s(adr.RevenueShare))
	}
	for _, bc := range r.bcs {
		out = append(out, "BC "+s(bc.Deposit)+" "+s(bc.Stake)+" "+s(bc.NetRevenue)+" "+s(bc.RevenueShare)+" "+
			s(bc.FixedIncome)+" "+decimal.NewFromInt(int64(bc.CPACount)).String()+" "+
			decimal.NewFromInt(int64(bc.RegisteredCount)).String())
	}
	for key, bdr := range r.dailyReports {
		out = append(out, "BDR "+utils.FormatDay(key.day)+" "+s(bdr.Deposit)+" "+s(bdr.NetRevenue)+" "+
			s(bdr.FixedIncome)+" "+decimal.NewFromInt(int64(bdr.CPACountValue())).String())
	}
	for _, pla := range r.plas {
		out = append(out, "PLA "+s(pla.FixedIncome)+" "+s(pla.FixedIncomeLocal)+" "+
			decimal.NewFromInt(int64(pla.CPACount)).String())
	}
	for _, pldr := range r.partnerDailies {
		out = append(out, "PLDR "+s(pldr.FixedIncome)+" "+s(pldr.FixedIncomeLocal)+" "+
			decimal.NewFromInt(int64(pldr.CPACount)).String())
	}
	sort.Strings(out)
	return out
}
