package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"itda/internal/auth"
	"itda/internal/model"
	"itda/internal/service"
)

// AuthHandler handles authentication and profile endpoints.
type AuthHandler struct {
	authService service.AuthService
	userService service.UserService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, userService service.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

// BrokerInfoRequest carries a broker's licensing details.
type BrokerInfoRequest struct {
	LicenseNumber string `json:"licenseNumber" validate:"required"`
	CompanyName   string `json:"companyName" validate:"required"`
	Address       string `json:"address" validate:"required"`
}

func (r *BrokerInfoRequest) profile() model.BrokerProfile {
	return model.BrokerProfile{
		LicenseNumber: r.LicenseNumber,
		CompanyName:   r.CompanyName,
		Address:       r.Address,
	}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email      string             `json:"email" validate:"required,email"`
	Password   string             `json:"password" validate:"required,min=6"`
	Name       string             `json:"name" validate:"required"`
	Phone      string             `json:"phone" validate:"required"`
	Role       model.Role         `json:"role" validate:"omitempty,oneof=member broker"`
	BrokerInfo *BrokerInfoRequest `json:"brokerInfo" validate:"required_if=Role broker"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    *model.User `json:"user"`
}

// UserResponse wraps a user with a status message.
type UserResponse struct {
	Message string      `json:"message"`
	User    *model.User `json:"user"`
}

// Register godoc
// @Summary Register a new member or broker
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(err)
	}
	req.Email = model.NormalizeEmail(req.Email)
	if err := c.Validate(&req); err != nil {
		return fail(c, err)
	}

	in := service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		Role:     req.Role,
	}
	if req.BrokerInfo != nil {
		profile := req.BrokerInfo.profile()
		in.BrokerInfo = &profile
	}

	token, user, err := h.authService.Register(c.Request().Context(), in)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, AuthResponse{
		Message: "registration completed",
		Token:   token,
		User:    user,
	})
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(err)
	}
	req.Email = model.NormalizeEmail(req.Email)
	if err := c.Validate(&req); err != nil {
		return fail(c, err)
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Message: "login successful",
		Token:   token,
		User:    user,
	})
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := auth.IdentityFrom(c)
	if err != nil {
		return fail(c, err)
	}
	user, err := h.userService.GetUser(c.Request().Context(), identity.UserID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// VerifyBroker godoc
// @Summary Request broker verification
// @Description Switches the caller to the broker role with an unverified profile awaiting review.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BrokerInfoRequest true "Broker licensing details"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/verify-broker [put]
func (h *AuthHandler) VerifyBroker(c echo.Context) error {
	identity, err := auth.IdentityFrom(c)
	if err != nil {
		return fail(c, err)
	}

	var req BrokerInfoRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(err)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, err)
	}

	user, err := h.userService.RequestBrokerVerification(c.Request().Context(), identity.UserID, req.profile())
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, UserResponse{
		Message: "broker verification requested; awaiting administrator approval",
		User:    user,
	})
}
