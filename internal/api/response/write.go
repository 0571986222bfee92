package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes data as a JSON response body with the given status. A nil data
// writes headers only, which the DELETE handlers never rely on — every
// endpoint here answers with a body, matching what the front-end expects.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		// Encode errors past WriteHeader are unrecoverable; the status
		// line is already on the wire.
		_ = json.NewEncoder(w).Encode(data)
	}
}
