package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"

	"github.com/matzehuels/tianzige/pkg/errors"
)

// rateLimit limits requests per client IP with a sliding window.
func rateLimit(limit int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(
		limit,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
			writeJSON(w, http.StatusTooManyRequests, errorResponse{
				Code:    "RATE_LIMITED",
				Message: "too many requests, try again later",
			})
		}),
	)
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidPageSize,
		errors.ErrCodeInvalidMargins,
		errors.ErrCodeInvalidColor,
		errors.ErrCodeGridTooSmall,
		errors.ErrCodeMinimumBoxes:
		return http.StatusBadRequest
	case errors.ErrCodeUnsupportedGeometry:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
