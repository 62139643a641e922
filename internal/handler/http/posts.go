package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-social-hub/internal/service"
	"github.com/MKhiriev/go-social-hub/internal/store"
	"github.com/MKhiriev/go-social-hub/internal/utils"
	"github.com/MKhiriev/go-social-hub/models"
)

func (h *Handler) getAllPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.GetAllPosts(r.Context())
	if err != nil {
		respondServerError(w, r, err)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		respondError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	post, err := h.services.PostService.GetPostByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			respondError(w, "Post not found", http.StatusNotFound)
			return
		}
		respondServerError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var request models.CreatePostRequest
	if !h.decodeAndValidate(w, r, &request) {
		return
	}

	post, err := h.services.PostService.CreatePost(r.Context(), identity.ID, request)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			respondError(w, "User not found", http.StatusNotFound)
			return
		}
		respondServerError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusCreated)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	postID, err := pathID(r, "id")
	if err != nil {
		respondError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	var request models.UpdatePostRequest
	if !h.decodeAndValidate(w, r, &request) {
		return
	}

	post, err := h.services.PostService.UpdatePost(r.Context(), postID, identity.ID, request)
	if err != nil {
		// Whether the post is missing or owned by someone else is not
		// revealed to the client.
		if errors.Is(err, store.ErrPostNotFound) || errors.Is(err, service.ErrNotOwner) {
			respondError(w, "Post not found or unauthorized", http.StatusNotFound)
			return
		}
		respondServerError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	postID, err := pathID(r, "id")
	if err != nil {
		respondError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	if err := h.services.PostService.DeletePost(r.Context(), postID, identity.ID); err != nil {
		if errors.Is(err, store.ErrPostNotFound) || errors.Is(err, service.ErrNotOwner) {
			respondError(w, "Post not found or unauthorized", http.StatusNotFound)
			return
		}
		respondServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
