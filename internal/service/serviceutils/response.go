package serviceutils

import (
	"github.com/labstack/echo/v4"

	"github.com/locvowork/hospitality_backoffice/internal/logger"
)

// APIResponse is the common response envelope for every endpoint.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ResponseSuccess writes a success envelope.
func ResponseSuccess(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ResponseError logs the failure and writes an error envelope. The detail
// string carries the underlying error (e.g. the upstream's own message) so
// the UI can show it verbatim.
func ResponseError(c echo.Context, status int, message string, err error) error {
	detail := ""
	if err != nil {
		detail = err.Error()
		logger.ErrorLog(c.Request().Context(), message, err)
	} else {
		logger.ErrorLog(c.Request().Context(), message)
	}
	return c.JSON(status, APIResponse{
		Success: false,
		Message: message,
		Error:   detail,
	})
}
