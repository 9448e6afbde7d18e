package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jamesfcoton/site-backend/content"
	"github.com/jamesfcoton/site-backend/errs"
)

type marqueeHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   *content.Service
}

func newMarqueeHandler(content *content.Service) marqueeHandler {
	logger := log.With().Str("handlerName", "marqueeHandler").Logger()

	return marqueeHandler{
		responder: NewResponder(logger),
		logger:    logger,
		content:   content,
	}
}

// getMarquee serves the banner entries in display order.
func (h marqueeHandler) getMarquee() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]any{
			"items": h.content.Marquee(),
		})
	}
}

// addMarquee appends one banner entry.
func (h marqueeHandler) addMarquee() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Text string `json:"text"`
			Link string `json:"link"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if body.Text == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("text"))
			return
		}

		item, cloudOK, err := h.content.AddMarquee(r.Context(), body.Text, body.Link)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]any{
			"status": "success",
			"cloud":  cloudStatus(cloudOK),
			"item":   item,
		})
	}
}

// removeMarquee deletes one banner entry by id.
func (h marqueeHandler) removeMarquee() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID := chi.URLParam(r, "itemID")
		if itemID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing itemID"))
			return
		}

		cloudOK, err := h.content.RemoveMarquee(r.Context(), itemID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status":  "success",
			"cloud":   cloudStatus(cloudOK),
			"message": "marquee item removed",
		})
	}
}
