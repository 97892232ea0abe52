package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// ReportWatchdog kiểm tra campaign thiếu báo cáo ngày hôm qua
type ReportWatchdog interface {
	Watchdog(ctx context.Context) error
}

const watchdogTimeout = 5 * time.Minute

// InitCronJobs đăng ký watchdog theo lịch spec (múi giờ của cron) và khởi động cron
func InitCronJobs(c *cron.Cron, spec string, watchdog ReportWatchdog) error {
	_, err := c.AddFunc(spec, func() {
		runWatchdog(watchdog)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

func runWatchdog(watchdog ReportWatchdog) {
	ctx, cancel := context.WithTimeout(context.Background(), watchdogTimeout)
	defer cancel()

	log.Printf("Đang chạy kiểm tra báo cáo thiếu lúc: %v", time.Now())
	if err := watchdog.Watchdog(ctx); err != nil {
		log.Printf("Lỗi khi kiểm tra báo cáo thiếu: %v", err)
	}
}
