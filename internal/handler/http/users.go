package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-social-hub/internal/store"
	"github.com/MKhiriev/go-social-hub/internal/utils"
)

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		respondError(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			respondError(w, "User not found", http.StatusNotFound)
			return
		}
		respondServerError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.PublicProfile(), http.StatusOK)
}
