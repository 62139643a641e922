package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-social-hub/internal/store"
	"github.com/MKhiriev/go-social-hub/internal/utils"
)

func (h *Handler) getLikes(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		respondError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	likes, err := h.services.LikeService.GetLikesByPostID(r.Context(), postID)
	if err != nil {
		respondServerError(w, r, err)
		return
	}

	utils.WriteJSON(w, likes, http.StatusOK)
}

func (h *Handler) likePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	postID, err := pathID(r, "postId")
	if err != nil {
		respondError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	like, err := h.services.LikeService.LikePost(r.Context(), postID, identity.ID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateLike):
			respondError(w, "Post already liked", http.StatusConflict)
			return
		case errors.Is(err, store.ErrPostNotFound):
			respondError(w, "Post not found", http.StatusNotFound)
			return
		default:
			respondServerError(w, r, err)
			return
		}
	}

	utils.WriteJSON(w, like, http.StatusCreated)
}

func (h *Handler) unlikePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	postID, err := pathID(r, "postId")
	if err != nil {
		respondError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	if err := h.services.LikeService.UnlikePost(r.Context(), postID, identity.ID); err != nil {
		if errors.Is(err, store.ErrLikeNotFound) {
			respondError(w, "Like not found", http.StatusNotFound)
			return
		}
		respondServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
