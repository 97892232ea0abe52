package accrual

import (
	"time"

	"betenlace/dto"
	"betenlace/models"
	"betenlace/services/fx"
	"betenlace/services/logger"
)

// Engine tính toán toàn bộ thay đổi của một lần upload trong bộ nhớ.
// Không truy cập DB; kết quả nằm trong ChangeSet.
type Engine struct {
	campaign *models.Campaign
	day      time.Time
	settings Settings
	fx       *fx.Converter
	logger   logger.Logger
	changes  *ChangeSet

	queues     map[string][]*Qualification
	queueOrder []string
	applied    map[uint]bool
	storedCPA  bool
}

func NewEngine(campaign *models.Campaign, day time.Time, settings Settings, converter *fx.Converter, log logger.Logger) *Engine {
	return &Engine{
		campaign: campaign,
		day:      day,
		settings: settings,
		fx:       converter,
		logger:   log,
		changes:  NewChangeSet(),
		queues:   make(map[string][]*Qualification),
		applied:  make(map[uint]bool),
	}
}

// Changes trả về các bản ghi cần ghi xuống DB
func (e *Engine) Changes() *ChangeSet {
	return e.changes
}

// Qualified trả về danh sách tài khoản đạt CPA hôm nay của prom_code, theo thứ tự file
func (e *Engine) Qualified(promCode string) []*Qualification {
	return e.queues[promCode]
}

// QualifiedCount là tổng số tài khoản đạt CPA hôm nay trên mọi link
func (e *Engine) QualifiedCount() int {
	total := 0
	for _, queue := range e.queues {
		total += len(queue)
	}
	return total
}

// PendingPromCodes trả về prom_code có tài khoản đạt CPA nhưng chưa được ghi nhận ở cấp link
func (e *Engine) PendingPromCodes(links map[string]*LinkState) []string {
	var pending []string
	for _, promCode := range e.queueOrder {
		link := links[promCode]
		if link == nil || e.applied[link.Link.ID] {
			continue
		}
		pending = append(pending, promCode)
	}
	return pending
}

// partnerLink trả về PLA nếu có hiệu lực trong ngày, ngược lại nil
func (e *Engine) partnerLink(link *LinkState) *models.PartnerLinkAccumulated {
	if IsEffective(link.PartnerLink, e.campaign, e.day) {
		return link.PartnerLink
	}
	return nil
}

// KeepStoredCPACount dùng khi upload không có file account: cpa_count của ngày lấy từ BDR đã lưu
func (e *Engine) KeepStoredCPACount() {
	e.storedCPA = true
}

// ApplyMember xử lý một dòng member của biến thể account.
// cpa_count là số tài khoản vừa đạt CPA của link, không lấy từ file.
func (e *Engine) ApplyMember(link *LinkState, row dto.MemberRow) {
	values := DayValuesFromMember(row)
	values.CPACount = e.cpaCount(link)
	e.applyLink(link, values, e.queues[link.Link.PromCode])
}

// ApplyQualifiedOnly ghi nhận CPA cho link không có dòng member; số liệu còn lại giữ như BDR đã lưu
func (e *Engine) ApplyQualifiedOnly(link *LinkState) {
	values := StoredDayValues(link.DailyReport)
	values.CPACount = e.cpaCount(link)
	e.applyLink(link, values, e.queues[link.Link.PromCode])
}

func (e *Engine) cpaCount(link *LinkState) uint32 {
	if e.storedCPA && link.DailyReport != nil {
		return link.DailyReport.CPACountValue()
	}
	return uint32(len(e.queues[link.Link.PromCode]))
}

// ApplyNetrefer xử lý một dòng netrefer (số lũy kế tháng)
func (e *Engine) ApplyNetrefer(link *LinkState, row dto.MemberRow) {
	values := NetreferDayValues(row, link.PriorMonth, e.settings.RevenueSharePercentage)
	e.applyLink(link, values, nil)
}

func (e *Engine) applyLink(link *LinkState, values DayValues, queue []*Qualification) {
	e.applied[link.Link.ID] = true

	bdr := e.applyBookmaker(link, values)

	pla := e.partnerLink(link)
	if pla == nil {
		e.revokePartner(link, bdr)
		return
	}
	tracked := e.shape(pla, values, queue)
	e.applyPartner(link, pla, bdr, tracked)
}
