package services

import (
	"errors"
	"fmt"
	"time"

	"contesthub/database"
	"contesthub/models"
	"contesthub/utils"
	"contesthub/utils/roles"

	"gorm.io/gorm"
)

var (
	// ErrNotAuthenticated means no identity was presented at all
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrProfileUnavailable means the profile was absent and creation failed too
	ErrProfileUnavailable = errors.New("profile unavailable")
)

// Replication lag between identity creation and profile-row visibility is
// tolerated by retrying the lookup before falling back to creation.
const profileLookupRetries = 3

var profileLookupBackoff = 200 * time.Millisecond

// ResolveProfile looks up the profile for a signed-in identity, creating one on
// first sight. The role defaults to member unless the identity carries a valid
// role hint.
func ResolveProfile(id, email, fullName, roleHint string) (models.Profile, error) {
	if id == "" {
		return models.Profile{}, ErrNotAuthenticated
	}

	var profile models.Profile
	for attempt := 0; attempt < profileLookupRetries; attempt++ {
		err := database.DB.First(&profile, "id = ?", id).Error
		if err == nil {
			return profile, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
		}
		if attempt < profileLookupRetries-1 {
			time.Sleep(profileLookupBackoff)
		}
	}

	role := models.RoleMember
	if _, ok := roles.ParseRole(roleHint); ok {
		role = roleHint
	}

	password, err := utils.CreateDefaultPassword()
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %v", ErrProfileUnavailable, err)
	}

	profile = models.Profile{
		ID:       id,
		Email:    email,
		FullName: fullName,
		Role:     role,
		Password: password,
	}
	if err := database.DB.Create(&profile).Error; err != nil {
		return models.Profile{}, fmt.Errorf("%w: %v", ErrProfileUnavailable, err)
	}

	return profile, nil
}
