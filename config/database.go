package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

func getDBConfigByEnv(env string) (string, error) {
	var prefix string
	switch env {
	case "dev", "qc", "prod":
		prefix = strings.ToUpper(env)
	default:
		return "", fmt.Errorf("unknown environment: %q", env)
	}

	user := os.Getenv(prefix + "_DB_USER")
	password := os.Getenv(prefix + "_DB_PASSWORD")
	host := os.Getenv(prefix + "_DB_HOST")
	port := os.Getenv(prefix + "_DB_PORT")
	name := os.Getenv(prefix + "_DB_NAME")
	sslmode := os.Getenv(prefix + "_DB_SSLMODE")
	if sslmode == "" {
		sslmode = "require"
	}

	// cột date và created_at của fx_partner được so sánh theo UTC
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		host, user, password, name, port, sslmode), nil
}

func ConnectDB(env string) {
	dsn, err := getDBConfigByEnv(env)
	if err != nil {
		log.Fatalf("Fail to build db config: %v", err)
	}

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("Fail to connect to db : %v", err)
	}

	log.Println("Successfully connected to db")
}
