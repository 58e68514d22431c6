package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/Boren168-g/Daa-Management-System/app/models"
)

type Config struct {
	DB        *sql.DB
	FeePolicy models.FeePolicy
	JWTSecret string
	Port      string
}

var AppConfig *Config

// LoadEnv reads a .env file when present and falls back to the process
// environment otherwise.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the PostgreSQL pool and populates the global config. The
// connection string comes from DATABASE_URL or from the discrete DB_*
// variables.
func InitDB() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_NAME", "daa_management_system"),
			getEnv("DB_SSLMODE", "disable"),
		)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	policy := models.DefaultFeePolicy()
	if os.Getenv("FEE_REQUIRE_ENROLLMENT") == "false" {
		policy.RequireEnrollment = false
	}
	if os.Getenv("FEE_REJECT_OVERPAYMENT") == "true" {
		policy.RejectOverpayment = true
	}

	AppConfig = &Config{
		DB:        db,
		FeePolicy: policy,
		JWTSecret: getEnv("JWT_SECRET", "daa-management-secret-key"),
		Port:      getEnv("PORT", "5000"),
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func GetFeePolicy() models.FeePolicy {
	return AppConfig.FeePolicy
}

func GetJWTSecret() []byte {
	return []byte(AppConfig.JWTSecret)
}
