package middleware

import (
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/serenita/spa-api/internal/pkg/response"
)

// RateLimit limits requests per client IP using a fixed one-minute Redis window.
// A nil client or non-positive limit disables limiting entirely.
func RateLimit(client *redis.Client, perMinute int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if client == nil || perMinute <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := "ratelimit:" + getClientIP(r) + ":" + time.Now().Format("200601021504")

			count, err := client.Incr(r.Context(), key).Result()
			if err != nil {
				// Redis being down must not take the API down with it
				log.Warn().Err(err).Msg("Rate limit check failed, allowing request")
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				client.Expire(r.Context(), key, time.Minute)
			}

			if count > int64(perMinute) {
				response.TooManyRequests(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
