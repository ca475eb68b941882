package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a zero user id means
// the middleware did not run or the token carried no identity.
func ctxIdentity(c echo.Context) (userID int64, role string, err error) {
	userID, _ = c.Get("user_id").(int64)
	if userID == 0 {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	role, _ = c.Get("role").(string)
	return userID, role, nil
}
