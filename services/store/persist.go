package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"betenlace/commands"
	"betenlace/models"
	"betenlace/services/accrual"
)

// Persist ghi toàn bộ ChangeSet trong một transaction.
// Giữ pg_advisory_xact_lock theo (campaign, ngày) để hai lần ghi cùng khóa không chồng nhau.
func (s *Store) Persist(ctx context.Context, campaignID uint, day time.Time, changes *accrual.ChangeSet) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", AdvisoryKey(campaignID, day)).Error; err != nil {
			return err
		}
		return s.persistCommand(tx, changes).Execute()
	})
}

// AdvisoryKey ghép campaign id và số ngày kể từ epoch thành khóa int64
func AdvisoryKey(campaignID uint, day time.Time) int64 {
	days := day.Unix() / 86400
	return int64(campaignID)<<32 | (days & 0xffffffff)
}

func (s *Store) persistCommand(tx *gorm.DB, changes *accrual.ChangeSet) commands.PersistCommand {
	var newAccounts, oldAccounts []*models.AccountReport
	for _, ar := range changes.Accounts {
		if ar.ID == 0 {
			newAccounts = append(newAccounts, ar)
		} else {
			oldAccounts = append(oldAccounts, ar)
		}
	}

	var newAccountDailies, oldAccountDailies []*models.AccountDailyReport
	for _, pending := range changes.AccountDailies {
		if pending.Daily.ID == 0 {
			newAccountDailies = append(newAccountDailies, pending.Daily)
		} else {
			oldAccountDailies = append(oldAccountDailies, pending.Daily)
		}
	}

	var newDailyReports, oldDailyReports []*models.BetenlaceDailyReport
	for _, bdr := range changes.DailyReports {
		if bdr.ID == 0 {
			newDailyReports = append(newDailyReports, bdr)
		} else {
			oldDailyReports = append(oldDailyReports, bdr)
		}
	}

	var newPartnerDailies, oldPartnerDailies []*models.PartnerLinkDailyReport
	for _, pending := range changes.PartnerDailies {
		if pending.PartnerDaily.ID == 0 {
			newPartnerDailies = append(newPartnerDailies, pending.PartnerDaily)
		} else {
			oldPartnerDailies = append(oldPartnerDailies, pending.PartnerDaily)
		}
	}

	return commands.NewMacroCommand(
		commands.NewBulkCreateCommand(newAccounts, tx, s.batchSize),
		commands.NewBulkSaveCommand(oldAccounts, tx, s.batchSize),
		commands.FuncCommand(func() error {
			for _, pending := range changes.AccountDailies {
				pending.Daily.AccountReportID = pending.Account.ID
			}
			return nil
		}),
		commands.NewBulkCreateCommand(newAccountDailies, tx, s.batchSize),
		commands.NewBulkSaveCommand(oldAccountDailies, tx, s.batchSize),
		commands.NewBulkSaveCommand(changes.BetenlaceCPAs, tx, s.batchSize),
		commands.NewBulkSaveCommand(oldDailyReports, tx, s.batchSize),
		commands.NewBulkCreateCommand(newDailyReports, tx, s.batchSize),
		commands.NewBulkSaveCommand(changes.PartnerLinks, tx, s.batchSize),
		commands.FuncCommand(func() error {
			for _, pending := range changes.PartnerDailies {
				pending.PartnerDaily.BetenlaceDailyReportID = pending.DailyReport.ID
			}
			return nil
		}),
		commands.NewBulkSaveCommand(oldPartnerDailies, tx, s.batchSize),
		commands.NewBulkCreateCommand(newPartnerDailies, tx, s.batchSize),
	)
}
