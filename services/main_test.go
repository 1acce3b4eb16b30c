package services

import (
	"strings"
	"testing"

	"contesthub/database"
	"contesthub/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stripFunctionDefaults clears function-call column defaults (e.g. the
// Postgres gen_random_uuid()) from the cached schemas before migration —
// sqlite cannot parse them, and the models' BeforeCreate hooks supply the
// values instead.
func stripFunctionDefaults(t *testing.T, db *gorm.DB, values ...interface{}) {
	t.Helper()
	for _, v := range values {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(v); err != nil {
			t.Fatalf("failed to parse model schema: %v", err)
		}
		for _, f := range stmt.Schema.Fields {
			if strings.Contains(f.DefaultValue, "(") {
				f.HasDefaultValue = false
				f.DefaultValue = ""
			}
		}
	}
}

// setupTestDB points the shared handle at a fresh in-memory store
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	stripFunctionDefaults(t, db,
		&models.Profile{},
		&models.Competition{},
		&models.Requirement{},
		&models.EligibilityRule{},
		&models.SavedCompetition{},
		&models.PasswordReset{},
	)

	if err := db.AutoMigrate(
		&models.Profile{},
		&models.Competition{},
		&models.Requirement{},
		&models.EligibilityRule{},
		&models.SavedCompetition{},
		&models.PasswordReset{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	database.DB = db
}
