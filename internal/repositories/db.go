// Package repositories provides the data access layer. It handles all
// database operations and data persistence logic.
package repositories

import (
	"fmt"
	"log"
	"time"

	"paisa/internal/config"
	"paisa/internal/models"
	"paisa/internal/repositories/cache"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global database instance used across the application.
var DB *gorm.DB

// CacheService fronts hot user lookups. May be nil when Redis is disabled.
var CacheService *cache.CacheService

// InitDB opens the PostgreSQL connection, runs migrations and wires the
// Redis cache. Every write is durable before the issuing operation returns.
func InitDB() error {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		config.GetEnv("DB_HOST", "localhost"),
		config.GetEnv("DB_USER", "postgres"),
		config.GetEnv("DB_PASSWORD", "postgres"),
		config.GetEnv("DB_NAME", "paisa"),
		config.GetEnv("DB_PORT", "5432"),
		config.GetEnv("DB_SSLMODE", "disable"),
	)

	logLevel := logger.Silent
	if !config.IsProduction() {
		logLevel = logger.Warn
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	redisCfg := &cache.RedisConfig{
		Host:     config.GetEnv("REDIS_HOST", "localhost"),
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	}
	redisClient := cache.NewRedisClient(redisCfg)
	CacheService = cache.NewCacheService(redisClient, 24*time.Hour)

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.KYC{},
		&models.Address{},
		&models.BankDetails{},
	); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	log.Println("database initialized")
	return nil
}
