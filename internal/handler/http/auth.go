package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-social-hub/internal/logger"
	"github.com/MKhiriev/go-social-hub/internal/service"
	"github.com/MKhiriev/go-social-hub/internal/store"
	"github.com/MKhiriev/go-social-hub/internal/utils"
	"github.com/MKhiriev/go-social-hub/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if !h.decodeAndValidate(w, r, &request) {
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Debug().Str("email", request.Email).Msg("email already in use")
			respondError(w, "Email already in use", http.StatusConflict)
			return
		default:
			respondServerError(w, r, err)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		respondServerError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.String()))
	utils.WriteJSON(w, models.AuthResponse{User: registeredUser, Token: token.String()}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if !h.decodeAndValidate(w, r, &request) {
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		switch {
		// Unknown email and wrong password are deliberately
		// indistinguishable to the client.
		case errors.Is(err, store.ErrNoUserWasFound), errors.Is(err, service.ErrWrongPassword):
			log.Debug().Str("email", request.Email).Msg("login rejected")
			respondError(w, "invalid email/password", http.StatusUnauthorized)
			return
		default:
			respondServerError(w, r, err)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		respondServerError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.String()))
	utils.WriteJSON(w, models.AuthResponse{User: foundUser, Token: token.String()}, http.StatusOK)
}
