package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"contesthub/database"
	"contesthub/middleware"
	"contesthub/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogout_EvictsCachedSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	database.REDIS = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	profile := models.Profile{
		ID:    "44444444-4444-4444-4444-444444444444",
		Email: "member@example.com",
		Role:  models.RoleMember,
	}
	cacheKey := middleware.ProfileCacheKeyPrefix + profile.ID
	require.NoError(t, mr.Set(cacheKey, `{"id":"44444444-4444-4444-4444-444444444444"}`))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	c.Set(middleware.ProfileKey, profile)

	logoutHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, mr.Exists(cacheKey), "logout must evict the cached session")

	var cleared bool
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "auth_token" {
			cleared = true
			assert.Empty(t, cookie.Value)
			assert.Negative(t, cookie.MaxAge)
		}
	}
	assert.True(t, cleared, "logout must clear the auth cookie")
}
