package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jamesfcoton/site-backend/catalog"
	"github.com/jamesfcoton/site-backend/content"
	"github.com/jamesfcoton/site-backend/errs"
	"github.com/jamesfcoton/site-backend/models"
)

type sectionHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   *content.Service
}

func newSectionHandler(content *content.Service) sectionHandler {
	logger := log.With().Str("handlerName", "sectionHandler").Logger()

	return sectionHandler{
		responder: NewResponder(logger),
		logger:    logger,
		content:   content,
	}
}

func (h sectionHandler) writeSectionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrUnknownSection):
		h.responder.WriteError(w, errs.NewNotFoundError("section not found"))
	case errors.Is(err, catalog.ErrUnknownProject):
		h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
	default:
		h.responder.WriteError(w, err)
	}
}

// addToSection places a library project into the highlight, top10, or a
// category.
func (h sectionHandler) addToSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sectionID := chi.URLParam(r, "sectionID")

		var body struct {
			ProjectID string `json:"projectId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if body.ProjectID == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("projectId"))
			return
		}

		cloudOK, err := h.content.Apply(r.Context(), func(c *models.CatalogData) (*models.CatalogData, error) {
			movie, ok := catalog.FindProject(c, body.ProjectID)
			if !ok {
				return nil, catalog.ErrUnknownProject
			}
			return catalog.AddToSection(c, sectionID, movie)
		})
		if err != nil {
			h.writeSectionError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status": "success",
			"cloud":  cloudStatus(cloudOK),
		})
	}
}

// removeFromSection drops a project from a list section.
func (h sectionHandler) removeFromSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sectionID := chi.URLParam(r, "sectionID")
		projectID := chi.URLParam(r, "projectID")

		cloudOK, err := h.content.Apply(r.Context(), func(c *models.CatalogData) (*models.CatalogData, error) {
			return catalog.RemoveFromSection(c, sectionID, projectID)
		})
		if err != nil {
			h.writeSectionError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status": "success",
			"cloud":  cloudStatus(cloudOK),
		})
	}
}

// reorderSection moves one entry inside a section's list.
func (h sectionHandler) reorderSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sectionID := chi.URLParam(r, "sectionID")

		var body struct {
			From int `json:"from"`
			To   int `json:"to"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		cloudOK, err := h.content.Apply(r.Context(), func(c *models.CatalogData) (*models.CatalogData, error) {
			return catalog.Reorder(c, sectionID, body.From, body.To)
		})
		if err != nil {
			h.writeSectionError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status": "success",
			"cloud":  cloudStatus(cloudOK),
		})
	}
}

// renameSection sets a section's display title.
func (h sectionHandler) renameSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sectionID := chi.URLParam(r, "sectionID")

		var body struct {
			Title string `json:"title"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		cloudOK, err := h.content.Apply(r.Context(), func(c *models.CatalogData) (*models.CatalogData, error) {
			return catalog.RenameSection(c, sectionID, body.Title)
		})
		if err != nil {
			h.writeSectionError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status": "success",
			"cloud":  cloudStatus(cloudOK),
		})
	}
}

// createCategory appends a new empty category row.
func (h sectionHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Title string `json:"title"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if body.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}

		var created models.Category
		cloudOK, err := h.content.Apply(r.Context(), func(c *models.CatalogData) (*models.CatalogData, error) {
			next, cat := catalog.CreateCategory(c, body.Title)
			created = cat
			return next, nil
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]any{
			"status":   "success",
			"cloud":    cloudStatus(cloudOK),
			"category": created,
		})
	}
}

// deleteCategory removes a category row; its movies stay in the library.
func (h sectionHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID := chi.URLParam(r, "categoryID")
		if categoryID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing categoryID"))
			return
		}

		cloudOK, err := h.content.Apply(r.Context(), func(c *models.CatalogData) (*models.CatalogData, error) {
			return catalog.DeleteCategory(c, categoryID), nil
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status":  "success",
			"cloud":   cloudStatus(cloudOK),
			"message": "category deleted successfully",
		})
	}
}

// reorderCategories moves a whole category row.
func (h sectionHandler) reorderCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			From int `json:"from"`
			To   int `json:"to"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		cloudOK, err := h.content.Apply(r.Context(), func(c *models.CatalogData) (*models.CatalogData, error) {
			return catalog.ReorderCategories(c, body.From, body.To), nil
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
