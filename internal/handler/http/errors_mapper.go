package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-social-hub/internal/logger"
	"github.com/MKhiriev/go-social-hub/internal/utils"
	"github.com/MKhiriev/go-social-hub/internal/validators"
	"github.com/MKhiriev/go-social-hub/models"
	"github.com/go-chi/chi/v5"
)

// Canonical client-facing error messages. Unexpected errors are never
// echoed to the client; they are logged and replaced by msgServerError.
const (
	msgAuthenticate     = "Please authenticate."
	msgValidationFailed = "Validation failed"
	msgServerError      = "Something went wrong!"
	msgInvalidJSON      = "Invalid JSON was passed"
)

// respondError writes the uniform JSON error envelope with the given
// status code.
func respondError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}

// respondServerError logs the real error server-side and sends the
// generic 500 body to the client.
func respondServerError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Msg("unexpected error")
	respondError(w, msgServerError, http.StatusInternalServerError)
}

// decodeAndValidate decodes the JSON request body into dst and runs
// schema validation on it. On failure it writes the appropriate 400
// response (with the full violation list for schema errors) and returns
// false; the caller must not proceed.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	log := logger.FromRequest(r)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		respondError(w, msgInvalidJSON, http.StatusBadRequest)
		return false
	}

	if err := h.validator.Validate(r.Context(), dst); err != nil {
		var validationErr *validators.ValidationError
		if errors.As(err, &validationErr) {
			log.Debug().Err(err).Msg("request body failed validation")
			utils.WriteJSON(w, models.ErrorResponse{
				Error:   msgValidationFailed,
				Details: validationErr.Violations,
			}, http.StatusBadRequest)
			return false
		}

		respondServerError(w, r, err)
		return false
	}

	return true
}

// pathID parses the named chi URL parameter as an int64.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// identity returns the authenticated caller stored by the auth
// middleware. A missing identity means the route was wired without the
// middleware; the request is rejected with 401 and false is returned.
func (h *Handler) identity(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no identity in context on an authenticated route")
		respondError(w, msgAuthenticate, http.StatusUnauthorized)
		return models.Identity{}, false
	}
	return identity, true
}
