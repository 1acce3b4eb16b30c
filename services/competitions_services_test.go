package services

import (
	"testing"
	"time"

	"contesthub/database"
	"contesthub/models"
	"contesthub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCompetition(t *testing.T, title string, deadline time.Time) models.Competition {
	t.Helper()

	competition := models.Competition{
		Title:      title,
		Category:   "Design",
		Difficulty: "Beginner",
		Deadline:   deadline,
		PrizeValue: "$1,000",
		Status:     models.StatusActive,
	}
	require.NoError(t, CreateCompetition(&competition))
	return competition
}

func TestListCompetitions_NewestFirst(t *testing.T) {
	setupTestDB(t)

	first := createTestCompetition(t, "First", time.Now().Add(time.Hour))
	// sqlite timestamps have second precision, force distinct created_at
	database.DB.Model(&first).Update("created_at", time.Now().Add(-time.Hour))
	second := createTestCompetition(t, "Second", time.Now().Add(time.Hour))

	list, err := ListCompetitions()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestDuplicateCompetition(t *testing.T) {
	setupTestDB(t)

	deadline := time.Now().Add(30 * 24 * time.Hour).Truncate(time.Second)
	original := createTestCompetition(t, "Logo Contest", deadline)
	require.NoError(t, ReplaceRequirements(original.ID, []string{"Submit as PNG", "Original work only"}))

	duplicate, err := DuplicateCompetition(original.ID)
	require.NoError(t, err)

	assert.NotEqual(t, original.ID, duplicate.ID)
	assert.Equal(t, "Logo Contest (Copy)", duplicate.Title)
	assert.Equal(t, original.Category, duplicate.Category)
	assert.Equal(t, original.Difficulty, duplicate.Difficulty)
	assert.Equal(t, original.PrizeValue, duplicate.PrizeValue)
	assert.Equal(t, original.Status, duplicate.Status)
	assert.True(t, original.Deadline.Equal(duplicate.Deadline))

	// the copy starts without requirement rows of its own
	copied, err := GetRequirements(duplicate.ID)
	require.NoError(t, err)
	assert.Empty(t, copied)

	kept, err := GetRequirements(original.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 2)
}

func TestArchiveCompetition_KeepsDeadline(t *testing.T) {
	setupTestDB(t)

	deadline := time.Now().Add(10 * 24 * time.Hour).Truncate(time.Second)
	competition := createTestCompetition(t, "Photo Walk", deadline)

	require.NoError(t, ArchiveCompetition(competition.ID))

	archived, err := GetCompetition(competition.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusArchived, archived.Status)
	assert.True(t, deadline.Equal(archived.Deadline))
	assert.Equal(t, utils.DisplayArchived, utils.DisplayStatus(archived, time.Now()))
}

func TestUpdateCompetition_UnknownID(t *testing.T) {
	setupTestDB(t)

	err := UpdateCompetition("3b86c9f1-0000-0000-0000-000000000000", map[string]interface{}{"title": "New"})
	assert.Error(t, err)
}

func TestReplaceRequirements_OrderAndMandatory(t *testing.T) {
	setupTestDB(t)

	competition := createTestCompetition(t, "Writing Sprint", time.Now().Add(time.Hour))
	require.NoError(t, ReplaceRequirements(competition.ID, []string{"Max 2000 words", "English only", "One entry per person"}))

	rows, err := GetRequirements(competition.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, i, row.OrderIndex)
		assert.True(t, row.IsMandatory)
	}
	assert.Equal(t, "Max 2000 words", rows[0].RequirementText)
}

func TestReplaceRequirements_EmptyListClearsRows(t *testing.T) {
	setupTestDB(t)

	competition := createTestCompetition(t, "Music Jam", time.Now().Add(time.Hour))
	require.NoError(t, ReplaceRequirements(competition.ID, []string{"Bring your own instrument"}))

	require.NoError(t, ReplaceRequirements(competition.ID, []string{}))

	rows, err := GetRequirements(competition.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReplaceEligibility(t *testing.T) {
	setupTestDB(t)

	competition := createTestCompetition(t, "Food Fest", time.Now().Add(time.Hour))
	minAge := 18
	rules := []models.EligibilityRule{
		{EligibilityText: "Must be 18 or older", EligibilityType: "age", MinAge: &minAge},
		{EligibilityText: "Open to EU residents only", EligibilityType: "location", LocationRestriction: "EU"},
	}
	require.NoError(t, ReplaceEligibility(competition.ID, rules))

	stored, err := GetEligibility(competition.ID)
	require.NoError(t, err)
	require.Len(t, stored, 2)

	require.NoError(t, ReplaceEligibility(competition.ID, nil))
	stored, err = GetEligibility(competition.ID)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestGetCreatorStats(t *testing.T) {
	setupTestDB(t)

	now := time.Now()
	creator := "9f2d1a30-0000-0000-0000-00000000c1e0"

	active := createTestCompetition(t, "Active", now.Add(time.Hour))
	ended := createTestCompetition(t, "Ended", now.Add(-time.Hour))
	archived := createTestCompetition(t, "Archived", now.Add(time.Hour))
	for _, c := range []models.Competition{active, ended, archived} {
		require.NoError(t, UpdateCompetition(c.ID, map[string]interface{}{"created_by": creator}))
	}
	require.NoError(t, ArchiveCompetition(archived.ID))

	// a competition from someone else never counts
	createTestCompetition(t, "Other", now.Add(time.Hour))

	stats, err := GetCreatorStats(creator, now)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Active)
	assert.Equal(t, 1, stats.Ended)
	assert.Equal(t, 1, stats.Archived)
}

func TestSavedCompetitionLifecycle(t *testing.T) {
	setupTestDB(t)

	competition := createTestCompetition(t, "Street Shots", time.Now().Add(time.Hour))
	userID := "6a1b2c3d-0000-0000-0000-0000000000aa"

	entry, err := SaveCompetition(userID, competition.ID, "reminder: prepare portfolio")
	require.NoError(t, err)
	assert.Equal(t, competition.ID, entry.CompetitionID)

	_, err = SaveCompetition(userID, competition.ID, "")
	assert.ErrorIs(t, err, ErrAlreadySaved)

	list, err := ListSavedCompetitions(userID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Competition)
	assert.Equal(t, "Street Shots", list[0].Competition.Title)

	require.NoError(t, UnsaveCompetition(userID, competition.ID))
	assert.Error(t, UnsaveCompetition(userID, competition.ID))
}

func TestCreateCompetitionEndToEnd(t *testing.T) {
	setupTestDB(t)

	deadline := time.Now().AddDate(1, 0, 0).Truncate(time.Second)
	competition := models.Competition{
		Title:      "Logo Contest",
		Category:   "Design",
		Difficulty: "Beginner",
		Deadline:   deadline,
		PrizeValue: "$2,500",
		Status:     models.StatusActive,
	}
	require.NoError(t, CreateCompetition(&competition))

	list, err := ListCompetitions()
	require.NoError(t, err)
	require.Len(t, list, 1)

	now := time.Now()
	assert.Equal(t, utils.DisplayActive, utils.DisplayStatus(list[0], now))

	visible := utils.CompetitionFilter{Status: utils.DisplayActive}.Apply(list, now)
	require.Len(t, visible, 1)
	assert.Equal(t, "Logo Contest", visible[0].Title)

	hidden := utils.CompetitionFilter{Status: utils.DisplayEnded}.Apply(list, now)
	assert.Empty(t, hidden)
}
