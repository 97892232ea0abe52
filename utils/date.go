package utils

import (
	"time"

	"betenlace/constants"
)

// LoadLocation nạp timezone của nhà cái, mặc định America/Bogota
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = constants.DefaultOperatorTimezone
	}
	return time.LoadLocation(name)
}

// DateOnly cắt phần giờ, giữ ngày ở UTC để so sánh/lưu cột date
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Yesterday trả về ngày hôm qua theo timezone loc
func Yesterday(now time.Time, loc *time.Location) time.Time {
	return DateOnly(now.In(loc).AddDate(0, 0, -1))
}

// Midnight trả về 00:00 của day trong timezone loc
func Midnight(day time.Time, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
}

// MonthStart trả về ngày đầu tháng của day
func MonthStart(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// SameDay so sánh theo ngày, bỏ qua giờ và timezone
func SameDay(a *time.Time, b time.Time) bool {
	if a == nil {
		return false
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ParseDay parse "YYYY-MM-DD"
func ParseDay(s string) (time.Time, error) {
	return time.Parse(constants.DateLayout, s)
}

// FormatDay format ngày theo "YYYY-MM-DD"
func FormatDay(t time.Time) string {
	return t.Format(constants.DateLayout)
}
