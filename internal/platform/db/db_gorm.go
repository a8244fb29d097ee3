package db

import (
	"errors"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "walloffame_backend/internal/feature/auth/domain/entity"
	winsentity "walloffame_backend/internal/feature/wins/domain/entity"
)

// EnvKeyDatabaseURL is the environment variable holding the Postgres DSN.
const EnvKeyDatabaseURL = "DATABASE_URL"

// Opener abstracts gorm.Open so connection retry logic can be tested
// without a real database.
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry opens a database connection, retrying every 3 seconds
// until it succeeds or the timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, errors.New("db connect failed: " + err.Error())
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// OpenDB は設定されたDSNでPostgresに接続し、必要に応じてマイグレーションを実行します。
// DATABASE_URLが未設定の場合はプロセスを終了します（起動時の設定エラーはフェイルファスト）。
func OpenDB() *gorm.DB {
	dsn := os.Getenv(EnvKeyDatabaseURL)
	if dsn == "" {
		log.Fatalf("%s must be set", EnvKeyDatabaseURL)
	}

	db, err := ConnectWithRetry(dsn, 60*time.Second, func(dsn string) (*gorm.DB, error) {
		return gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	})
	if err != nil {
		log.Fatalf("DB connect failed after 60s: %v", err)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（User, Win）
		if err := db.AutoMigrate(
			&authentity.User{},
			&winsentity.Win{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
