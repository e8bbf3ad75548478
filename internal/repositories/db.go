// Package repositories provides the data access layer. It owns the shared
// database handle, the Redis cache client, and the per-entity repository
// implementations used by the services.
package repositories

import (
	"fmt"
	"log"
	"os"
	"time"

	"mentormatch/internal/config"
	"mentormatch/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the shared database handle, opened once at startup. Repositories
// and transaction managers receive it (or a transaction scoped to it) by
// injection; nothing else should touch it directly.
var DB *gorm.DB

// RedisClient is the shared cache client, nil when caching is disabled.
var RedisClient *redis.Client

// DBConfig holds database connection pool configuration.
type DBConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// InitDB opens the PostgreSQL connection, configures pooling, runs schema
// migration, and connects Redis. It must be called before any repository
// constructor is used.
func InitDB() error {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		config.GetEnv("DB_HOST", "localhost"),
		config.GetEnv("DB_USER", "postgres"),
		config.GetEnv("DB_PASSWORD", "postgres"),
		config.GetEnv("DB_NAME", "mentormatch"),
		config.GetEnv("DB_PORT", "5432"),
	)

	// Full query logging in development only; production keeps warnings
	// and slow queries.
	logLevel := logger.Info
	if config.IsProduction() {
		logLevel = logger.Warn
	}
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  !config.IsProduction(),
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	DB = db

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	poolCfg := DBConfig{
		MaxIdleConns:    config.GetIntEnv("DB_MAX_IDLE_CONNS", 10),
		MaxOpenConns:    config.GetIntEnv("DB_MAX_OPEN_CONNS", 100),
		ConnMaxLifetime: config.GetDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		ConnMaxIdleTime: config.GetDurationEnv("DB_CONN_MAX_IDLE_TIME", 30*time.Minute),
	}
	sqlDB.SetMaxIdleConns(poolCfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(poolCfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(poolCfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(poolCfg.ConnMaxIdleTime)

	if err := db.AutoMigrate(
		&models.User{},
		&models.TutorProfile{},
		&models.Subject{},
		&models.Wallet{},
		&models.Transaction{},
		&models.Schedule{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     config.GetEnv("REDIS_HOST", "localhost") + ":" + config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	})

	return nil
}

// CloseDB releases the database and cache connections.
func CloseDB() {
	if DB != nil {
		if sqlDB, err := DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Printf("failed to close database connection: %v", err)
			}
		}
	}
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			log.Printf("failed to close redis connection: %v", err)
		}
	}
}
