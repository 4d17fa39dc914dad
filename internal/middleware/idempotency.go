package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	idempotencyTTL     = 24 * time.Hour
	idempotencyLockTTL = 30 * time.Second
)

// cachedResponse is what a completed POST leaves behind in redis.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// idempotencyKeys scopes the key to the concrete URL so one key reused on
// two resources never replays the other resource's response.
func idempotencyKeys(c *gin.Context, key string) (string, string) {
	cacheKey := fmt.Sprintf("idemp:%s:%s:%s:%s", c.GetString("company_id"), c.GetString("user_id"), c.Request.URL.Path, key)
	return cacheKey, cacheKey + ":lock"
}

// Idempotency replays the stored response of a POST carrying an
// Idempotency-Key the caller already used. Concurrent duplicates get 409
// while the first one runs. 5xx responses are not stored so the caller may
// retry. Redis failures let the request through.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	log := zap.L().Named("middleware.idempotency")

	return func(c *gin.Context) {
		key := c.GetHeader("Idempotency-Key")
		if key == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey, lockKey := idempotencyKeys(c, key)

		val, err := rdb.Get(ctx, cacheKey).Bytes()
		switch {
		case err == nil:
			var cached cachedResponse
			if err := json.Unmarshal(val, &cached); err == nil {
				c.Header("Idempotent-Replayed", "true")
				c.Data(cached.Status, cached.ContentType, cached.Body)
				c.Abort()
				return
			}
			log.Warn("discarding unreadable idempotency entry", zap.String("key", cacheKey))
		case !errors.Is(err, redis.Nil):
			log.Warn("idempotency lookup failed", zap.Error(err))
			c.Next()
			return
		}

		locked, err := rdb.SetNX(ctx, lockKey, "1", idempotencyLockTTL).Result()
		if err != nil {
			log.Warn("idempotency lock failed", zap.Error(err))
			c.Next()
			return
		}
		if !locked {
			abort(c, ErrRequestInFlight)
			return
		}

		bg := context.WithoutCancel(ctx)
		defer rdb.Del(bg, lockKey)

		w := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		status := w.Status()
		if status >= http.StatusInternalServerError {
			return
		}
		payload, err := json.Marshal(cachedResponse{
			Status:      status,
			ContentType: w.Header().Get("Content-Type"),
			Body:        w.body.Bytes(),
		})
		if err != nil {
			return
		}
		if err := rdb.Set(bg, cacheKey, payload, idempotencyTTL).Err(); err != nil {
			log.Warn("idempotency store failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}
}
