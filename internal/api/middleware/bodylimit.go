package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxJSONBodyBytes caps JSON request bodies at 1MB. CV uploads go through
// multipart and have their own limit.
const MaxJSONBodyBytes = 1 << 20

// BodyLimit rejects oversized JSON bodies up front and caps the reader for
// clients that lie about Content-Length.
func BodyLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.ContentType() == "application/json" {
			if c.Request.ContentLength > MaxJSONBodyBytes {
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"message": "Request body too large."})
				return
			}
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxJSONBodyBytes)
		}
		c.Next()
	}
}
