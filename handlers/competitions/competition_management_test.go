package competitions

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"contesthub/database"
	"contesthub/middleware"
	"contesthub/models"
	"contesthub/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	stripFunctionDefaults(t, db,
		&models.Profile{},
		&models.Competition{},
		&models.Requirement{},
		&models.EligibilityRule{},
	)
	require.NoError(t, db.AutoMigrate(
		&models.Profile{},
		&models.Competition{},
		&models.Requirement{},
		&models.EligibilityRule{},
	))
	database.DB = db
}

// stripFunctionDefaults clears function-call column defaults (e.g. the
// Postgres gen_random_uuid()) from the cached schemas before migration —
// sqlite cannot parse them, and the models' BeforeCreate hooks supply the
// values instead.
func stripFunctionDefaults(t *testing.T, db *gorm.DB, values ...interface{}) {
	t.Helper()
	for _, v := range values {
		stmt := &gorm.Statement{DB: db}
		require.NoError(t, stmt.Parse(v))
		for _, f := range stmt.Schema.Fields {
			if strings.Contains(f.DefaultValue, "(") {
				f.HasDefaultValue = false
				f.DefaultValue = ""
			}
		}
	}
}

// newTestContext builds a gin context carrying an already-resolved profile,
// sidestepping token verification
func newTestContext(t *testing.T, profile models.Profile, method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set(middleware.ProfileKey, profile)
	return c, w
}

func clientProfile() models.Profile {
	return models.Profile{
		ID:       "11111111-1111-1111-1111-111111111111",
		Email:    "client@example.com",
		FullName: "Client One",
		Role:     models.RoleClient,
	}
}

func TestCreateCompetition_MissingTitleWritesNothing(t *testing.T) {
	setupTestDB(t)

	payload := map[string]interface{}{
		"description": "No title here",
		"category":    "Design",
		"difficulty":  "Beginner",
		"deadline":    time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	}
	c, w := newTestContext(t, clientProfile(), http.MethodPost, "/api/v1/client/competitions", payload)

	CreateCompetition(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	database.DB.Model(&models.Competition{}).Count(&count)
	assert.Zero(t, count, "a rejected create must not insert a competition")

	database.DB.Model(&models.Requirement{}).Count(&count)
	assert.Zero(t, count, "a rejected create must not insert requirements")
}

func TestCreateCompetition_DefaultsApplied(t *testing.T) {
	setupTestDB(t)

	payload := map[string]interface{}{
		"title":       "Poster Design Challenge",
		"description": "Design a poster",
		"category":    "Design",
		"difficulty":  "Intermediate",
		"deadline":    time.Now().Add(30 * 24 * time.Hour).Format(time.RFC3339),
		"prize_value": "$1,500",
		"requirements": []string{
			"A3 format",
			"Vector source included",
		},
	}
	c, w := newTestContext(t, clientProfile(), http.MethodPost, "/api/v1/client/competitions", payload)

	CreateCompetition(c)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var stored models.Competition
	require.NoError(t, database.DB.First(&stored).Error)
	assert.Equal(t, models.StatusActive, stored.Status)
	assert.Equal(t, "USD", stored.PrizeCurrency)
	assert.Equal(t, clientProfile().ID, stored.CreatedBy)

	rows, err := services.GetRequirements(stored.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "A3 format", rows[0].RequirementText)
}

func TestUpdateCompetition_OwnershipEnforced(t *testing.T) {
	setupTestDB(t)

	foreign := models.Competition{
		Title:      "Someone Else's Contest",
		Category:   "Art",
		Difficulty: "Beginner",
		Deadline:   time.Now().Add(time.Hour),
		Status:     models.StatusActive,
		CreatedBy:  "22222222-2222-2222-2222-222222222222",
	}
	require.NoError(t, database.DB.Create(&foreign).Error)

	title := "Hijacked"
	c, w := newTestContext(t, clientProfile(), http.MethodPut, "/api/v1/client/competitions/"+foreign.ID,
		map[string]interface{}{"title": title})
	c.Params = gin.Params{{Key: "id", Value: foreign.ID}}

	UpdateCompetition(c)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var reloaded models.Competition
	require.NoError(t, database.DB.First(&reloaded, "id = ?", foreign.ID).Error)
	assert.Equal(t, "Someone Else's Contest", reloaded.Title)
}

func TestGetCompetition_NotFound(t *testing.T) {
	setupTestDB(t)

	c, w := newTestContext(t, clientProfile(), http.MethodGet, "/api/v1/competitions/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "33333333-3333-3333-3333-333333333333"}}

	GetCompetition(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
