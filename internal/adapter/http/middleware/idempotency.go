package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	requestIDHeader      = "X-Request-ID"
	replayTTL            = 24 * time.Hour
	replayKeyPrefix      = "checkout:replay:"
)

// storedReply is the serialized form of a previously delivered response.
type storedReply struct {
	StatusCode  int             `json:"status_code"`
	Body        json.RawMessage `json:"body"`
	ContentType string          `json:"content_type"`
}

type captureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response for requests that repeat an
// Idempotency-Key (or X-Request-ID) already served, so a retried checkout
// POST never reaches the handler twice. Redis being unavailable degrades to
// plain pass-through; the usecase layer still dedupes against the charges
// table.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		key := c.GetHeader(idempotencyKeyHeader)
		if key == "" {
			key = c.GetHeader(requestIDHeader)
		}
		if key == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		replayKey := replayKeyPrefix + key

		reply, err := loadReply(ctx, rdb, replayKey)
		if err != nil && err != redis.Nil {
			log.Printf("[idempotency][middleware] redis lookup failed key=%s err=%v", key, err)
			c.Next()
			return
		}

		if reply != nil {
			log.Printf("[idempotency][middleware] replaying stored response key=%s status=%d", key, reply.StatusCode)
			c.Data(reply.StatusCode, reply.ContentType, reply.Body)
			c.Abort()
			return
		}

		w := &captureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = w

		c.Next()

		// Server errors are retryable; everything else is pinned.
		if c.Writer.Status() >= http.StatusInternalServerError {
			return
		}
		if err := storeReply(ctx, rdb, replayKey, &storedReply{
			StatusCode:  c.Writer.Status(),
			Body:        w.body.Bytes(),
			ContentType: c.Writer.Header().Get("Content-Type"),
		}); err != nil {
			log.Printf("[idempotency][middleware] redis store failed key=%s err=%v", key, err)
		}
	}
}

func loadReply(ctx context.Context, rdb *redis.Client, key string) (*storedReply, error) {
	data, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}
	var reply storedReply
	if err := json.Unmarshal(data, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func storeReply(ctx context.Context, rdb *redis.Client, key string, reply *storedReply) error {
	data, err := json.Marshal(reply)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, data, replayTTL).Err()
}
