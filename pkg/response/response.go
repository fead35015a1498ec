package response

import (
	"context"
	"fmt"
	"net/http"

	"analytics-srv/pkg/discord"
	"analytics-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK renders a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error renders an error response. HTTPError values keep their status code;
// anything else becomes a 500 and is reported to Discord when configured.
func Error(c *gin.Context, err error, notifier discord.IDiscord) {
	if httpErr, ok := err.(*errors.HTTPError); ok {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		if httpErr.StatusCode >= http.StatusInternalServerError {
			notify(c, notifier, httpErr.Message)
		}
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   err.Error(),
	})
}

// PanicError renders a 500 response for a recovered panic value.
func PanicError(c *gin.Context, recovered any, notifier discord.IDiscord) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
	notify(c, notifier, fmt.Sprintf("panic: %v", recovered))
}

func notify(c *gin.Context, notifier discord.IDiscord, message string) {
	if notifier == nil {
		return
	}
	// Notification failures must not affect the response.
	go func(ctx context.Context, method, path string) {
		_ = notifier.SendError(ctx, "Request failed",
			fmt.Sprintf("%s %s", method, path), fmt.Errorf("%s", message))
	}(context.Background(), c.Request.Method, c.Request.URL.Path)
}
