package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"customerSegment/pkg/logger"
	jsonres "customerSegment/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders errors that escape the handlers as JSON.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if he.Internal != nil {
			err = he.Internal
		}
		message = fmt.Sprint(he.Message)
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled error", "method", c.Request().Method, "path", c.Path(), "error", err)
		message = http.StatusText(code)
	}

	body := jsonres.Error(errorCode(code), message, nil)

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, body)
	}
	if err != nil {
		logger.Error("Failed to write error response", "error", err)
	}
}

func errorCode(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}
