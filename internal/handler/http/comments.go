package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-social-hub/internal/service"
	"github.com/MKhiriev/go-social-hub/internal/store"
	"github.com/MKhiriev/go-social-hub/internal/utils"
	"github.com/MKhiriev/go-social-hub/models"
)

func (h *Handler) getCommentsByPost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		respondError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	comments, err := h.services.CommentService.GetCommentsByPostID(r.Context(), postID)
	if err != nil {
		respondServerError(w, r, err)
		return
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var request models.CreateCommentRequest
	if !h.decodeAndValidate(w, r, &request) {
		return
	}

	comment, err := h.services.CommentService.CreateComment(r.Context(), identity.ID, request)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			respondError(w, "Post not found", http.StatusNotFound)
			return
		}
		respondServerError(w, r, err)
		return
	}

	utils.WriteJSON(w, comment, http.StatusCreated)
}

func (h *Handler) updateComment(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	commentID, err := pathID(r, "id")
	if err != nil {
		respondError(w, "Invalid comment id", http.StatusBadRequest)
		return
	}

	var request models.UpdateCommentRequest
	if !h.decodeAndValidate(w, r, &request) {
		return
	}

	comment, err := h.services.CommentService.UpdateComment(r.Context(), commentID, identity.ID, request)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrCommentNotFound):
			respondError(w, "Comment not found", http.StatusNotFound)
			return
		case errors.Is(err, service.ErrNotOwner):
			respondError(w, "You can only modify your own comments", http.StatusForbidden)
			return
		default:
			respondServerError(w, r, err)
			return
		}
	}

	utils.WriteJSON(w, comment, http.StatusOK)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	commentID, err := pathID(r, "id")
	if err != nil {
		respondError(w, "Invalid comment id", http.StatusBadRequest)
		return
	}

	if err := h.services.CommentService.DeleteComment(r.Context(), commentID, identity.ID); err != nil {
		switch {
		case errors.Is(err, store.ErrCommentNotFound):
			respondError(w, "Comment not found", http.StatusNotFound)
			return
		case errors.Is(err, service.ErrNotOwner):
			respondError(w, "You can only delete your own comments", http.StatusForbidden)
			return
		default:
			respondServerError(w, r, err)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
