package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-social-hub/internal/service"
	"github.com/MKhiriev/go-social-hub/internal/store"
	"github.com/MKhiriev/go-social-hub/internal/utils"
)

func (h *Handler) getFollowers(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondError(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	followers, err := h.services.FollowService.GetFollowers(r.Context(), userID)
	if err != nil {
		respondServerError(w, r, err)
		return
	}

	utils.WriteJSON(w, followers, http.StatusOK)
}

func (h *Handler) getFollowing(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondError(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	following, err := h.services.FollowService.GetFollowing(r.Context(), userID)
	if err != nil {
		respondServerError(w, r, err)
		return
	}

	utils.WriteJSON(w, following, http.StatusOK)
}

func (h *Handler) followUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	followingID, err := pathID(r, "userId")
	if err != nil {
		respondError(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	follow, err := h.services.FollowService.FollowUser(r.Context(), identity.ID, followingID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSelfFollow):
			respondError(w, "You cannot follow yourself", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrDuplicateFollow):
			respondError(w, "Already following this user", http.StatusConflict)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			respondError(w, "User not found", http.StatusNotFound)
			return
		default:
			respondServerError(w, r, err)
			return
		}
	}

	utils.WriteJSON(w, follow, http.StatusCreated)
}

func (h *Handler) unfollowUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	followingID, err := pathID(r, "userId")
	if err != nil {
		respondError(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	if err := h.services.FollowService.UnfollowUser(r.Context(), identity.ID, followingID); err != nil {
		if errors.Is(err, store.ErrFollowNotFound) {
			respondError(w, "Follow relationship not found", http.StatusNotFound)
			return
		}
		respondServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
