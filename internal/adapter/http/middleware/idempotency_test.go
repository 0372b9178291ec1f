package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newTestRouter(rdb *redis.Client, hits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Idempotency(rdb))
	r.POST("/v1/charges", func(c *gin.Context) {
		*hits++
		c.JSON(http.StatusCreated, gin.H{"charge_id": "ch-1"})
	})
	return r
}

func TestIdempotency(t *testing.T) {
	// Points at nothing; every redis call fails, which must degrade to
	// pass-through rather than blocking the request.
	unreachable := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { _ = unreachable.Close() })

	t.Run("no key header passes through", func(t *testing.T) {
		hits := 0
		r := newTestRouter(unreachable, &hits)

		req := httptest.NewRequest(http.MethodPost, "/v1/charges", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if hits != 1 {
			t.Fatalf("expected handler to run once, got %d", hits)
		}
	})

	t.Run("redis failure degrades to pass-through", func(t *testing.T) {
		hits := 0
		r := newTestRouter(unreachable, &hits)

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodPost, "/v1/charges", nil)
			req.Header.Set("Idempotency-Key", "order-42")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusCreated {
				t.Fatalf("expected 201, got %d", w.Code)
			}
		}
		if hits != 2 {
			t.Fatalf("expected handler to run twice without redis, got %d", hits)
		}
	})

	t.Run("non-POST is ignored", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		hits := 0
		r := gin.New()
		r.Use(Idempotency(unreachable))
		r.GET("/ping", func(c *gin.Context) {
			hits++
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Idempotency-Key", "order-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if hits != 1 {
			t.Fatalf("expected handler to run once, got %d", hits)
		}
	})
}
