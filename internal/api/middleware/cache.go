package middleware

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmqops/booking-api/internal/cache"
)

type cachedWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cachedWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// CacheResponse serves GET responses from Redis when present and records
// 200 responses for the cache TTL. The cache key is path plus raw query, so
// each month view caches independently.
func CacheResponse(c *cache.Cache) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !c.Enabled() || ctx.Request.Method != http.MethodGet {
			ctx.Next()
			return
		}

		key := ctx.Request.URL.Path
		if raw := ctx.Request.URL.RawQuery; raw != "" {
			key += "?" + raw
		}

		if body, ok := c.Get(ctx.Request.Context(), key); ok {
			ctx.Data(http.StatusOK, "application/json; charset=utf-8", body)
			ctx.Abort()
			return
		}

		writer := &cachedWriter{ResponseWriter: ctx.Writer, body: &bytes.Buffer{}}
		ctx.Writer = writer

		ctx.Next()

		if ctx.Writer.Status() == http.StatusOK {
			c.Set(ctx.Request.Context(), key, writer.body.Bytes())
		}
	}
}
