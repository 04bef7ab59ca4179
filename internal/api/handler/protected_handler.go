package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ProtectedHandler serves the demo resource behind the request gate.
type ProtectedHandler struct{}

func NewProtectedHandler() *ProtectedHandler {
	return &ProtectedHandler{}
}

// Greet returns a greeting for the authenticated user.
//
// @Summary      Access a protected resource
// @Tags         protected
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Router       /protected [get]
func (h *ProtectedHandler) Greet(c echo.Context) error {
	_, username, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Hello, %s. You are viewing a protected resource.", username),
	})
}
