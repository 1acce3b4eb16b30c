package auth

import (
	"net/http"

	"contesthub/database"
	"contesthub/middleware"
	"contesthub/models"
	"contesthub/utils"
	"contesthub/utils/roles"

	"github.com/gin-gonic/gin"
)

// loginHandler authenticates a member or client profile
// @Summary Login to the application
// @Description Authenticates a member or client and returns a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param login body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func loginHandler(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var profile models.Profile
	if err := database.DB.Where("email = ?", req.Email).First(&profile).Error; err != nil {
		respondWithError(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	if !utils.CheckPasswordHash(req.Password, profile.Password) {
		respondWithError(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	// Admin accounts go through the passcode flow instead
	if profile.Role == models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{
			"error":    ErrUseAdminLogin,
			"redirect": roles.AdminLoginRoute,
		})
		return
	}

	token, err := middleware.GenerateToken(profile, req.RememberMe)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
		return
	}

	setCookieToken(c, token, req.RememberMe)

	c.JSON(http.StatusOK, AuthResponse{
		Token:    token,
		ID:       profile.ID,
		Email:    profile.Email,
		FullName: profile.FullName,
		Role:     profile.Role,
	})
}

// registerHandler creates a new member or client profile
// @Summary Register a new profile
// @Description Creates a member or client profile and returns a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param register body RegisterRequest true "Registration data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func registerHandler(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var count int64
	database.DB.Model(&models.Profile{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		respondWithError(c, http.StatusConflict, ErrEmailInUse)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrHashPasswordFailed)
		return
	}

	role := models.RoleMember
	if parsed, ok := roles.ParseRole(req.Role); ok && parsed != roles.Admin {
		role = string(parsed)
	}

	profile := models.Profile{
		Email:    req.Email,
		Password: hashed,
		FullName: req.FullName,
		Role:     role,
	}
	if err := database.DB.Create(&profile).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrProfileCreateFailed)
		return
	}

	token, err := middleware.GenerateToken(profile, false)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
		return
	}

	setCookieToken(c, token, false)

	c.JSON(http.StatusCreated, AuthResponse{
		Token:    token,
		ID:       profile.ID,
		Email:    profile.Email,
		FullName: profile.FullName,
		Role:     profile.Role,
	})
}

// checkAuthHandler returns the authenticated profile
// @Summary Check authentication
// @Description Returns the profile attached to the current session
// @Tags Auth
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 401 {object} map[string]string
// @Router /auth/check [get]
// @Security Bearer
func checkAuthHandler(c *gin.Context) {
	profile, err := middleware.GetProfileFromRequest(c)
	if err != nil {
		return // Error already handled
	}

	c.JSON(http.StatusOK, profile)
}

// logoutHandler clears the session cookie and cached profile
// @Summary Logout
// @Description Clears the authentication cookie and invalidates the cached session
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
// @Security Bearer
func logoutHandler(c *gin.Context) {
	if value, exists := c.Get(middleware.ProfileKey); exists {
		if profile, ok := value.(models.Profile); ok {
			middleware.InvalidateProfileCache(c, profile.ID)
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", "", -1, "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{"message": ErrLogoutSuccess})
}
