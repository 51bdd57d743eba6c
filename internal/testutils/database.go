package testutils

import (
	"fmt"
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"collabhub/internal/database"
	"collabhub/internal/model"
)

// SetupTestDB creates a test database connection using environment variables
// Defaults to test database configuration if env vars not set
// Automatically migrates all tables before returning the connection
// Also sets up global database.PostgresDB for testing
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Get database connection string from environment or use defaults
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		host := getEnvOrDefault("POSTGRES_HOST", "localhost")
		port := getEnvOrDefault("POSTGRES_PORT", "5433")
		user := getEnvOrDefault("POSTGRES_USER", "test")
		password := getEnvOrDefault("POSTGRES_PASSWORD", "test")
		dbname := getEnvOrDefault("POSTGRES_DB", "collabhub_test")

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host, port, user, password, dbname)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Suppress logs in tests
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	// Initialize all tables
	if err := model.InitTable(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	// Return a transaction for automatic rollback
	tx := db.Begin()
	database.PostgresDB = tx
	t.Cleanup(func() {
		tx.Rollback()
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return tx
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
