package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mhd-interiors/crm-console/internal/api/middleware"
	"github.com/mhd-interiors/crm-console/internal/core/domain"
)

// ctxSession extracts the session injected by the Auth middleware. Its
// presence proves the middleware ran; absence means the route is miswired.
func ctxSession(c echo.Context) (*domain.Session, error) {
	sess, _ := c.Get(middleware.SessionKey).(*domain.Session)
	if sess == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return sess, nil
}
