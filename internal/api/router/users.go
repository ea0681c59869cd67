package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/news-digest/internal/apperr"
	"github.com/DjordjeVuckovic/news-digest/internal/auth"
	"github.com/labstack/echo/v4"
)

type UserRouter struct {
	e    *echo.Echo
	auth *auth.Service
}

func NewUserRouter(e *echo.Echo, auth *auth.Service) *UserRouter {
	return &UserRouter{
		e:    e,
		auth: auth,
	}
}

func (r *UserRouter) Bind() {
	g := r.e.Group("/api/v1/users")
	g.POST("/register", r.register)
	g.POST("/login", r.login)
	g.GET("/me", r.me, auth.RequireUser(r.auth))
}

// register godoc
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "Username and password"
// @Success 201 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/users/register [post]
func (r *UserRouter) register(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	user, err := r.auth.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, UserResponse{ID: user.ID, Username: user.Username})
}

// login godoc
// @Summary Exchange credentials for a bearer token
// @Tags users
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param credentials body CredentialsRequest true "Username and password"
// @Success 200 {object} auth.Token
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/users/login [post]
func (r *UserRouter) login(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	token, err := r.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, token)
}

// me godoc
// @Summary Current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/users/me [get]
func (r *UserRouter) me(c echo.Context) error {
	user, ok := auth.UserFrom(c)
	if !ok {
		return apperr.NewAuthentication("not authenticated")
	}
	return c.JSON(http.StatusOK, UserResponse{ID: user.ID, Username: user.Username})
}
