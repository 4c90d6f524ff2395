package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr               string
	Environment        string
	JWTSecret          string
	DataEncryptionKey  string
	PayslipDir         string
	ExportPath         string
	LogLevel           string
	MaxBodyBytes       int64
	RateLimitPerMinute int
	ShutdownTimeout    time.Duration
	MetricsEnabled     bool
	ReportClearScreen  bool
}

// Load reads configuration from the environment, after merging an optional
// .env file in the working directory.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:               getEnv("APP_ADDR", ":8080"),
		Environment:        getEnv("APP_ENV", "development"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		DataEncryptionKey:  getEnv("DATA_ENCRYPTION_KEY", ""),
		PayslipDir:         getEnv("PAYSLIP_DIR", ""),
		ExportPath:         getEnv("EXPORT_PATH", "employee.csv"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		MaxBodyBytes:       int64(getEnvInt("MAX_BODY_BYTES", 65536)),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		ShutdownTimeout:    getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
		ReportClearScreen:  getEnvBool("REPORT_CLEAR_SCREEN", false),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if c.Environment == "production" && strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	if strings.TrimSpace(c.ExportPath) == "" {
		return fmt.Errorf("EXPORT_PATH is required")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}
	return nil
}

// EmployeeInput is the single employee record a CLI run reports on.
type EmployeeInput struct {
	Name           string
	BaseSalary     string
	DaysWorked     int
	CommuteBenefit bool
}

func LoadEmployee() (EmployeeInput, error) {
	input := EmployeeInput{
		Name:           strings.TrimSpace(os.Getenv("EMPLOYEE_NAME")),
		BaseSalary:     strings.TrimSpace(os.Getenv("EMPLOYEE_BASE_SALARY")),
		CommuteBenefit: getEnvBool("EMPLOYEE_COMMUTE_BENEFIT", false),
	}
	if input.Name == "" {
		return EmployeeInput{}, fmt.Errorf("EMPLOYEE_NAME is required")
	}
	if input.BaseSalary == "" {
		return EmployeeInput{}, fmt.Errorf("EMPLOYEE_BASE_SALARY is required")
	}
	rawDays := strings.TrimSpace(os.Getenv("EMPLOYEE_DAYS_WORKED"))
	days, err := strconv.Atoi(rawDays)
	if err != nil {
		return EmployeeInput{}, fmt.Errorf("EMPLOYEE_DAYS_WORKED must be an integer: %w", err)
	}
	input.DaysWorked = days
	return input, nil
}
