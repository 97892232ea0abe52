package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"

	"betenlace/constants"
)

var Cloudinary *cloudinary.Cloudinary

// Settings là cấu hình tiến trình đọc từ biến môi trường
type Settings struct {
	Env              string
	Port             string
	LogLevel         string
	OperatorTimezone string
	MinCPATrackerDay uint32
	ChatWebhookURL   string
	JWTSecret        string
	CloudinaryURL    string
	IngestorsFile    string
	WatchdogCron     string
	LockTTL          time.Duration
	BulkBatchSize    int
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func getEnvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Warning: %s=%q không hợp lệ, dùng mặc định %d", key, v, def)
		return def
	}
	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("Warning: %s=%q không hợp lệ, dùng mặc định %s", key, v, def)
		return def
	}
	return d
}

// LoadSettings đọc Settings từ môi trường, điền giá trị mặc định
func LoadSettings() Settings {
	return Settings{
		Env:              getEnvDefault("ENV", "dev"),
		Port:             getEnvDefault("PORT", "8083"),
		LogLevel:         getEnvDefault("LOG_LEVEL", "info"),
		OperatorTimezone: getEnvDefault("OPERATOR_TIMEZONE", constants.DefaultOperatorTimezone),
		MinCPATrackerDay: uint32(getEnvInt("MIN_CPA_TRACKER_DAY", constants.DefaultMinCPATrackerDay)),
		ChatWebhookURL:   GetEnv("CHAT_WEBHOOK_URL"),
		JWTSecret:        GetEnv("JWT_SECRET"),
		CloudinaryURL:    GetEnv("CLOUDINARY_URL"),
		IngestorsFile:    getEnvDefault("INGESTORS_FILE", "config/ingestors.yaml"),
		WatchdogCron:     getEnvDefault("WATCHDOG_CRON", "0 10 * * *"),
		LockTTL:          getEnvDuration("LOCK_TTL", 10*time.Minute),
		BulkBatchSize:    getEnvInt("BULK_BATCH_SIZE", constants.DefaultBulkBatchSize),
	}
}

// ConnectCloudinary khởi tạo client từ CLOUDINARY_URL; không cấu hình thì bỏ qua lưu trữ file
func ConnectCloudinary(url string) {
	if url == "" {
		log.Println("CLOUDINARY_URL trống, không lưu file upload")
		return
	}
	var err error
	Cloudinary, err = cloudinary.NewFromURL(url)
	if err != nil {
		log.Fatalf("Lỗi khi khởi tạo Cloudinary: %v", err)
	}
}
