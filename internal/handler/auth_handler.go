package handler

import (
	"net/http"

	"backoffice-service/pkg/config"

	"github.com/labstack/echo/v4"
)

var authConfig *config.AuthConfig

// InitAuth stores the hosted auth page locations served by AuthURLs.
func InitAuth(cfg *config.AuthConfig) {
	authConfig = cfg
}

// AuthURLs exposes the hosted sign-in, sign-up and password-reset URLs so the
// frontend never hardcodes them.
func AuthURLs(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"sign_in_url":         authConfig.SignInURL,
		"sign_up_url":         authConfig.SignUpURL,
		"forgot_password_url": authConfig.ForgotPasswordURL,
	})
}
