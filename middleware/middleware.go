package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"messenger-hub/config/common"
)

const requestIDHeader = "X-Request-Id"

type Middleware struct {
	*common.Config
	Log *logrus.Logger
}

func NewMiddleware(config *common.Config, logger *logrus.Logger) *Middleware {
	return &Middleware{Config: config, Log: logger}
}

// RequestID attaches a request id to every call so log lines from one
// request can be correlated. Incoming ids are trusted and passed through.
func (middleware *Middleware) RequestID(c *fiber.Ctx) error {
	requestID := c.Get(requestIDHeader)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	c.Locals("request_id", requestID)
	c.Set(requestIDHeader, requestID)

	middleware.Log.WithField("request_id", requestID).
		Tracef("%s %s", c.Method(), c.Path())
	return c.Next()
}
