package services

import (
	"testing"
	"time"

	"contesthub/database"
	"contesthub/models"
	"contesthub/utils/roles"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveProfile_ExistingProfile(t *testing.T) {
	setupTestDB(t)

	stored := models.Profile{
		Email:    "jamie@example.com",
		FullName: "Jamie Doe",
		Role:     models.RoleClient,
		Password: "hashed",
	}
	require.NoError(t, database.DB.Create(&stored).Error)

	profile, err := ResolveProfile(stored.ID, stored.Email, stored.FullName, "")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, profile.ID)
	assert.Equal(t, models.RoleClient, profile.Role)
}

func TestResolveProfile_UnknownIdentityBecomesMember(t *testing.T) {
	setupTestDB(t)
	shortenLookupBackoff(t)

	profile, err := ResolveProfile("5cf54e10-0000-0000-0000-0000000000bb", "new@example.com", "New Person", "")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", profile.Email)
	assert.Equal(t, models.RoleMember, profile.Role)
	assert.NotEmpty(t, profile.Password)

	// member profiles reach member pages but never the admin dashboard
	assert.True(t, roles.CanAccess(roles.Role(profile.Role), roles.Member))
	assert.False(t, roles.CanAccess(roles.Role(profile.Role), roles.Admin))
}

func TestResolveProfile_RoleHintHonoredWhenValid(t *testing.T) {
	setupTestDB(t)
	shortenLookupBackoff(t)

	profile, err := ResolveProfile("5cf54e10-0000-0000-0000-0000000000cc", "c@example.com", "C", "client")
	require.NoError(t, err)
	assert.Equal(t, models.RoleClient, profile.Role)
}

func TestResolveProfile_BadRoleHintFallsBackToMember(t *testing.T) {
	setupTestDB(t)
	shortenLookupBackoff(t)

	profile, err := ResolveProfile("5cf54e10-0000-0000-0000-0000000000dd", "d@example.com", "D", "superadmin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleMember, profile.Role)
}

func TestResolveProfile_NoIdentity(t *testing.T) {
	setupTestDB(t)

	_, err := ResolveProfile("", "", "", "")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func shortenLookupBackoff(t *testing.T) {
	t.Helper()
	old := profileLookupBackoff
	profileLookupBackoff = time.Millisecond
	t.Cleanup(func() { profileLookupBackoff = old })
}
