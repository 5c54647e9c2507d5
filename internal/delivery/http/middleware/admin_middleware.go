package middleware

import (
	"storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminMiddleware gates catalog mutations behind the session admin flag. The
// flag is a UI gate flipped by login, not an authentication scheme; there is
// no token to validate.
type AdminMiddleware struct {
	adminUC usecase.AdminUsecase
}

// NewAdminMiddleware is the constructor for AdminMiddleware.
func NewAdminMiddleware(adminUC usecase.AdminUsecase) *AdminMiddleware {
	return &AdminMiddleware{adminUC: adminUC}
}

// RequireAdmin rejects requests whose session has not logged in. It must be
// used after the session middleware.
func (m *AdminMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		isAdmin, err := m.adminUC.IsAdmin(c.Request().Context(), SessionID(c))
		if err != nil {
			return err
		}
		if !isAdmin {
			return errors.ErrAdminRequired
		}

		return next(c)
	}
}
