package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/remittance_app/internal/core/ports/services"
	"github.com/SscSPs/remittance_app/internal/dto"
	"github.com/SscSPs/remittance_app/internal/middleware"
	"github.com/SscSPs/remittance_app/internal/platform/config"
	"github.com/SscSPs/remittance_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// authHandler handles authentication related requests.
type authHandler struct {
	userService portssvc.UserSvcFacade
	jwtSecret   string
	jwtDuration time.Duration
	jwtIssuer   string
}

func newAuthHandler(us portssvc.UserSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		userService: us,
		jwtSecret:   cfg.JWTSecret,
		jwtDuration: cfg.JWTExpiryDuration,
		jwtIssuer:   cfg.JWTIssuer,
	}
}

// registerAuthRoutes sets up the public authentication routes. Login is rate
// limited per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, userService portssvc.UserSvcFacade) {
	registerValidators()
	h := newAuthHandler(userService, cfg)

	auth := r.Group("/api/v1/auth")
	{
		if lim, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit); err == nil {
			auth.POST("/login", middleware.RateLimit(lim), h.login)
		} else {
			slog.Warn("Invalid login rate limit, login is not rate limited", slog.String("rate", cfg.LoginRateLimit), slog.String("error", err.Error()))
			auth.POST("/login", h.login)
		}
		auth.POST("/register", h.register)
	}
}

// login godoc
// @Summary User login
// @Description Authenticates a user by email or phone number and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	profile, err := h.userService.AuthenticateUser(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		respondWithError(c, logger, err, "Failed to authenticate")
		return
	}

	token, err := utils.GenerateJWT(profile.UserID, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("User logged in", slog.String("user_id", profile.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(h.jwtDuration).UTC(),
		Profile:   dto.ToProfileResponse(profile),
	})
}

// register godoc
// @Summary Register new customer
// @Description Creates a customer account.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration Info"
// @Success 201 {object} dto.ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email or phone already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	profile, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to register user")
		return
	}

	logger.Info("User registered", slog.String("user_id", profile.UserID))
	c.JSON(http.StatusCreated, dto.ToProfileResponse(profile))
}
