package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LoggerMiddleware logs one line per request. Each request carries an
// X-Request-ID, generated when the caller does not supply one, so import
// uploads can be traced across the pipeline logs.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		fullPath := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			fullPath += "?" + raw
		}

		c.Next()

		// Request size matters here: imports post whole spreadsheets
		bodySize := c.Request.ContentLength
		if bodySize < 0 {
			bodySize = 0
		}

		short := requestID
		if len(short) > 8 {
			short = short[:8]
		}
		log.Printf("req=%s %s %s status=%d in=%dB out=%dB dur=%s ip=%s",
			short,
			c.Request.Method,
			fullPath,
			c.Writer.Status(),
			bodySize,
			c.Writer.Size(),
			time.Since(start).Round(time.Microsecond),
			c.ClientIP(),
		)

		for _, e := range c.Errors {
			log.Printf("req=%s error: %v", short, e.Err)
		}
	}
}
