package middleware

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"contesthub/config"
	"contesthub/database"
	"contesthub/metrics"
	"contesthub/models"
	"contesthub/services"
	"contesthub/utils/response"
	"contesthub/utils/roles"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// ProfileKey is the gin context key holding the resolved profile
	ProfileKey = "profile"

	// ProfileCacheKeyPrefix prefixes the Redis keys caching resolved profiles
	ProfileCacheKeyPrefix = "profile_session:"

	// ProfileCacheTTL bounds how stale a cached profile may get
	ProfileCacheTTL = 15 * time.Minute
)

// IdentityClaims is what the token carries about the signed-in identity. The
// extra fields let the profile resolver lazily recreate a missing profile row.
type IdentityClaims struct {
	ProfileID string
	Email     string
	FullName  string
	RoleHint  string
}

// GenerateToken creates a signed JWT for the given profile
func GenerateToken(profile models.Profile, rememberMe bool) (string, error) {
	ttl := 24 * time.Hour
	if rememberMe {
		ttl = 30 * 24 * time.Hour
	}

	claims := jwt.MapClaims{
		"profile_id": profile.ID,
		"email":      profile.Email,
		"full_name":  profile.FullName,
		"role":       profile.Role,
		"exp":        time.Now().Add(ttl).Unix(),
		"iat":        time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}

// AuthMiddleware validates the JWT from the Authorization header or the auth
// cookie, resolves the profile and stores it in the request context. Failures
// answer 401 with the login route of the dashboard being gated, so an
// unauthenticated request to an admin route redirects to the admin login,
// never to the member one.
func AuthMiddleware(required roles.Role) gin.HandlerFunc {
	loginRoute := roles.LoginRoute(required)

	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.Redirect(c, http.StatusUnauthorized, "No token provided", loginRoute)
			c.Abort()
			return
		}

		identity, err := parseToken(tokenString)
		if err != nil {
			response.Redirect(c, http.StatusUnauthorized, "Invalid or expired token", loginRoute)
			c.Abort()
			return
		}

		profile, err := loadProfile(c, identity)
		if err != nil {
			response.Redirect(c, http.StatusUnauthorized, "Profile not found", loginRoute)
			c.Abort()
			return
		}

		c.Set(ProfileKey, profile)
		c.Next()
	}
}

// RequireRole gates a dashboard route group on the given role. The payload on
// rejection carries the login route matching the required role.
func RequireRole(required roles.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := GetProfileFromRequest(c)
		if err != nil {
			c.Abort()
			return
		}

		current, ok := roles.ParseRole(profile.Role)
		if !ok || !roles.CanAccess(current, required) {
			response.Redirect(c, http.StatusForbidden, "Insufficient role", roles.LoginRoute(required))
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetProfileFromRequest returns the profile resolved by AuthMiddleware.
// When it is absent the 401 response has already been written; callers just return.
func GetProfileFromRequest(c *gin.Context) (models.Profile, error) {
	value, exists := c.Get(ProfileKey)
	if !exists {
		response.Redirect(c, http.StatusUnauthorized, "Not authenticated", roles.MemberLoginRoute)
		return models.Profile{}, errors.New("no profile in context")
	}

	profile, ok := value.(models.Profile)
	if !ok {
		response.Redirect(c, http.StatusUnauthorized, "Not authenticated", roles.MemberLoginRoute)
		return models.Profile{}, errors.New("invalid profile in context")
	}

	return profile, nil
}

// InvalidateProfileCache drops the cached profile after an update or role change
func InvalidateProfileCache(c *gin.Context, profileID string) {
	if database.REDIS == nil {
		return
	}
	if err := database.REDIS.Del(c, ProfileCacheKeyPrefix+profileID).Err(); err != nil {
		log.Printf("Failed to invalidate profile session cache: %v", err)
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

func parseToken(tokenString string) (IdentityClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return IdentityClaims{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return IdentityClaims{}, errors.New("invalid token claims")
	}

	profileID, ok := claims["profile_id"].(string)
	if !ok || profileID == "" {
		return IdentityClaims{}, errors.New("invalid profile id in token")
	}

	identity := IdentityClaims{ProfileID: profileID}
	identity.Email, _ = claims["email"].(string)
	identity.FullName, _ = claims["full_name"].(string)
	identity.RoleHint, _ = claims["role"].(string)
	return identity, nil
}

// loadProfile reads the profile from the Redis session cache, resolving it
// through the profile service on a miss (which lazily recreates a missing row)
func loadProfile(c *gin.Context, identity IdentityClaims) (models.Profile, error) {
	var profile models.Profile

	if database.REDIS != nil {
		cached, err := database.REDIS.Get(c, ProfileCacheKeyPrefix+identity.ProfileID).Result()
		if err == nil {
			if err := json.Unmarshal([]byte(cached), &profile); err == nil {
				metrics.CacheHits.Inc()
				return profile, nil
			}
		}
		metrics.CacheMisses.Inc()
	}

	profile, err := services.ResolveProfile(identity.ProfileID, identity.Email, identity.FullName, identity.RoleHint)
	if err != nil {
		return models.Profile{}, err
	}

	if database.REDIS != nil {
		if data, err := json.Marshal(profile); err == nil {
			if err := database.REDIS.Set(c, ProfileCacheKeyPrefix+identity.ProfileID, data, ProfileCacheTTL).Err(); err != nil {
				log.Printf("Failed to cache profile session: %v", err)
			}
		}
	}

	return profile, nil
}
