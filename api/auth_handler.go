package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jamesfcoton/site-backend/content"
	"github.com/jamesfcoton/site-backend/errs"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   *content.Service
	secret    []byte
	tokenTTL  time.Duration
}

func newAuthHandler(content *content.Service, secret []byte, tokenTTL time.Duration) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()
	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		content:   content,
		secret:    secret,
		tokenTTL:  tokenTTL,
	}
}

// login exchanges the admin password for a session token.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if body.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}

		if !h.content.CheckPassword(body.Password) {
			h.logger.Warn().Str("remote_addr", r.RemoteAddr).Msg("failed admin login")
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid password"))
			return
		}

		token, expiresAt, err := issueAdminToken(h.secret, h.tokenTTL)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("could not create session", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"token":     token,
			"expiresAt": expiresAt.UTC().Format(time.RFC3339),
		})
	}
}

// changePassword sets a new admin password after re-checking the current one.
func (h authHandler) changePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			CurrentPassword string `json:"currentPassword"`
			NewPassword     string `json:"newPassword"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.content.UpdatePassword(body.CurrentPassword, body.NewPassword); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "password updated",
		})
	}
}
