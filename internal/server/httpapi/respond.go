package httpapi

import (
	"encoding/json"
	"net/http"
)

// maxBodyBytes caps request bodies; the API only takes small credential forms.
const maxBodyBytes = 1 << 20

// JSON writes a JSON response with status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// JSONError writes {"error": "..."} with a given status.
func JSONError(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, errorResponse{Error: msg})
}

// DecodeJSON parses the request body into v. On failure it has already
// written a 400 "invalid JSON" response and the caller should just return.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		JSONError(w, http.StatusBadRequest, msgInvalidJSON)
		return errEmptyBody
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		JSONError(w, http.StatusBadRequest, msgInvalidJSON)
		return err
	}

	return nil
}
