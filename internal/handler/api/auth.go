package api

import (
	"errors"
	"net/http"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewAuthHandler(cmds commands.UserCommands, q queries.UserQueries) *AuthHandler {
	return &AuthHandler{cmds: cmds, q: q}
}

// @Summary Register
// @Description Create an account and return an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		if errors.Is(err, commands.ErrEmailTaken) {
			httperr.AbortWithError(c, http.StatusConflict, err, "An account with this email already exists", nil)
			return
		}
		if errors.Is(err, commands.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid registration details", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Registration failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.AuthResponse{
		AccessToken: result.Token,
		User:        resdto.FromUser(result.User),
	})
}

// @Summary Login
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Login(c.Request.Context(), req.ToInput())
	if err != nil {
		if errors.Is(err, commands.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Login failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.AuthResponse{
		AccessToken: result.Token,
		User:        resdto.FromUser(result.User),
	})
}

// @Summary Current user
// @Description Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load user", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Update profile
// @Description Update the authenticated user's profile; empty fields are left unchanged
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateProfileRequest true "Update profile request"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /users/me [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	updated, err := h.cmds.UpdateProfile(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		httperr.AbortWithError(c, userErrStatus(err), err, "Profile update failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUser(*updated))
}

// @Summary Update preferences
// @Description Update the authenticated user's stay preferences
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdatePreferencesRequest true "Update preferences request"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /users/me/preferences [put]
func (h *AuthHandler) UpdatePreferences(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	updated, err := h.cmds.UpdatePreferences(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		httperr.AbortWithError(c, userErrStatus(err), err, "Preference update failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUser(*updated))
}

// @Summary Upload avatar
// @Description Set the authenticated user's avatar image URL
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UploadAvatarRequest true "Upload avatar request"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /users/me/avatar [post]
func (h *AuthHandler) UploadAvatar(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.UploadAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	updated, err := h.cmds.UploadAvatar(c.Request.Context(), userID, req.Avatar)
	if err != nil {
		httperr.AbortWithError(c, userErrStatus(err), err, "Avatar upload failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUser(*updated))
}

func userErrStatus(err error) int {
	switch {
	case errors.Is(err, commands.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrDomainValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
