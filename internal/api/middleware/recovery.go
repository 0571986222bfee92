package middleware

import (
	"log/slog"
	"net/http"

	"github.com/tenpinclub/rollbook/internal/api/apierr"
	"github.com/tenpinclub/rollbook/internal/middleware"
)

// Recovery wraps the shared panic recovery so API routes answer panics with
// the coded JSON error body instead of a plain-text 500. The panic value
// itself stays in the server log.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})
}
