package api

import (
	"net/http"
	"time"

	reqdto "dealstream/internal/handler/dto/request"
	resdto "dealstream/internal/handler/dto/response"
	"dealstream/internal/handler/httperr"
	"dealstream/internal/handler/middleware"
	"dealstream/internal/pkg/config"
	"dealstream/internal/pkg/cookie"
	"dealstream/internal/pkg/errs"
	"dealstream/internal/pkg/jwt"
	"dealstream/internal/usecase/commands"
	"dealstream/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errs.New("user not authenticated")

type AuthHandler struct {
	cmds      commands.AuthCommands
	users     queries.UserQueries
	cookieCfg config.CookieConfig
	tokenTTL  time.Duration
}

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		users:     users,
		cookieCfg: cfg.Cookie,
		tokenTTL:  jwtService.TokenDuration(),
	}
}

// @Summary Register
// @Description Create an account keyed by email address
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Body
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Email and password are required", nil)
		return
	}

	if _, err := h.cmds.Register(c.Request.Context(), req.Email, req.Password); err != nil {
		switch {
		case errs.Is(err, commands.ErrUserExists):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Email already exists", nil)
		case errs.Is(err, commands.ErrInvalidInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email or password too short", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.MessageResponse{Message: "User registered successfully"})
}

// @Summary Login
// @Description Login with email and password; the token is also set as an HttpOnly cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Body
// @Failure 401 {object} httperr.Body
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Email and password are required", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "User not found", nil)
		case errs.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Incorrect password", nil)
		case errs.Is(err, commands.ErrInvalidInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Email and password are required", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetAccessTokenCookie(c, h.cookieCfg, result.AccessToken, h.tokenTTL)
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Logout
// @Description Clear the access token cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessTokenCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} httperr.Body
// @Failure 404 {object} httperr.Body
// @Router /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "User not authenticated", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	view, err := h.users.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errs.Is(err, queries.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(view, role.String()))
}
