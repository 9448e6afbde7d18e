package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jamesfcoton/site-backend/catalog"
	"github.com/jamesfcoton/site-backend/content"
	"github.com/jamesfcoton/site-backend/errs"
	"github.com/jamesfcoton/site-backend/models"
)

type catalogHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   *content.Service
}

func newCatalogHandler(content *content.Service) catalogHandler {
	logger := log.With().Str("handlerName", "catalogHandler").Logger()

	return catalogHandler{
		responder: NewResponder(logger),
		logger:    logger,
		content:   content,
	}
}

// getCatalog serves the whole catalog document.
func (h catalogHandler) getCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.content.Catalog())
	}
}

// search ranks the library against the q parameter.
func (h catalogHandler) search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		results := h.content.Search(query)

		h.responder.WriteJSON(w, map[string]any{
			"query":   query,
			"results": results,
			"total":   len(results),
		})
	}
}

// updatePages replaces the about/contact page content.
func (h catalogHandler) updatePages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pages catalog.PagesContent
		if err := json.NewDecoder(r.Body).Decode(&pages); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		cloudOK, err := h.content.Apply(r.Context(), func(c *models.CatalogData) (*models.CatalogData, error) {
			return catalog.UpdatePages(c, pages), nil
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status": "success",
			"cloud":  cloudStatus(cloudOK),
		})
	}
}

// updateBadge sets the hero badge text and color.
func (h catalogHandler) updateBadge() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Text  string `json:"text"`
			Color string `json:"color"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		cloudOK, err := h.content.Apply(r.Context(), func(c *models.CatalogData) (*models.CatalogData, error) {
			return catalog.UpdateBadge(c, body.Text, body.Color), nil
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status": "success",
			"cloud":  cloudStatus(cloudOK),
		})
	}
}

// updateTheme sets the site accent and marquee colors.
func (h catalogHandler) updateTheme() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ThemeColor       string `json:"themeColor"`
			MarqueeColor     string `json:"marqueeColor"`
			MarqueeTextColor string `json:"marqueeTextColor"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		cloudOK, err := h.content.Apply(r.Context(), func(c *models.CatalogData) (*models.CatalogData, error) {
			return catalog.UpdateTheme(c, body.ThemeColor, body.MarqueeColor, body.MarqueeTextColor), nil
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status": "success",
			"cloud":  cloudStatus(cloudOK),
		})
	}
}
