package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

const (
	defaultHTTPPort       = "8080"
	defaultLogLevel       = "info"
	defaultLockTimeout    = 5 * time.Second
	defaultReportSchedule = "@every 30s"
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	LogLevel               string
	JWTSecret              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	JaegerEndpoint         string
	LockTimeout            time.Duration
	ReportSchedule         string
}

// ConfigFromEnv reads the configuration through getenv. LOCK_TIMEOUT is in
// milliseconds.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:               withDefault(getenv("HTTP_PORT"), defaultHTTPPort),
		DBHost:                 getenv("DB_HOST"),
		DBPort:                 getenv("DB_PORT"),
		DBUser:                 getenv("DB_USER"),
		DBPassword:             getenv("DB_PASSWORD"),
		DBName:                 getenv("DB_NAME"),
		DBSslMode:              withDefault(getenv("DB_SSLMODE"), "disable"),
		LogLevel:               withDefault(getenv("LOG_LEVEL"), defaultLogLevel),
		JWTSecret:              getenv("JWT_SECRET"),
		KafkaHost:              getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: withDefault(getenv("KAFKA_ORDER_CHANGED_TOPIC"), "order.changed"),
		JaegerEndpoint:         getenv("JAEGER_ENDPOINT"),
		LockTimeout:            defaultLockTimeout,
		ReportSchedule:         withDefault(getenv("REPORT_SCHEDULE"), defaultReportSchedule),
	}

	if raw := getenv("LOCK_TIMEOUT"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms < 0 {
			return Config{}, fmt.Errorf("LOCK_TIMEOUT must be a non-negative number of milliseconds, got %q", raw)
		}
		config.LockTimeout = time.Duration(ms) * time.Millisecond
	}

	if config.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	if config.DBHost == "" || config.DBName == "" {
		return Config{}, errors.New("DB_HOST and DB_NAME are required")
	}

	return config, nil
}

// DSN is the Postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, withDefault(c.DBPort, "5432"), c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
