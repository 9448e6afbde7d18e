package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jamesfcoton/site-backend/catalog"
	"github.com/jamesfcoton/site-backend/content"
	"github.com/jamesfcoton/site-backend/errs"
	"github.com/jamesfcoton/site-backend/models"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   *content.Service
}

func newProjectHandler(content *content.Service) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		content:   content,
	}
}

// createProject adds a blank project to the front of the library.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var created models.Movie
		cloudOK, err := h.content.Apply(r.Context(), func(c *models.CatalogData) (*models.CatalogData, error) {
			next, movie := catalog.CreateProject(c)
			created = movie
			return next, nil
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]any{
			"status":  "success",
			"cloud":   cloudStatus(cloudOK),
			"project": created,
		})
	}
}

// updateProject replaces a project everywhere it appears.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var project models.Movie
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&project); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		// The URL wins over whatever id the body carries.
		project.ID = projectID

		cloudOK, err := h.content.Apply(r.Context(), func(c *models.CatalogData) (*models.CatalogData, error) {
			return catalog.SaveProject(c, project)
		})
		if errors.Is(err, catalog.ErrUnknownProject) {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status":  "success",
			"cloud":   cloudStatus(cloudOK),
			"project": project,
		})
	}
}

// updateProjectTags parses free-form tag input and stores the result on the
// project.
func (h projectHandler) updateProjectTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		var body struct {
			Tags string `json:"tags"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		var updated models.Movie
		cloudOK, err := h.content.Apply(r.Context(), func(c *models.CatalogData) (*models.CatalogData, error) {
			project, ok := catalog.FindProject(c, projectID)
			if !ok {
				return nil, catalog.ErrUnknownProject
			}
			project.Tags = catalog.SplitTags(body.Tags)
			next, err := catalog.SaveProject(c, project)
			if err != nil {
				return nil, err
			}
			updated, _ = catalog.FindProject(next, projectID)
			return next, nil
		})
		if errors.Is(err, catalog.ErrUnknownProject) {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status":  "success",
			"cloud":   cloudStatus(cloudOK),
			"project": updated,
		})
	}
}

// deleteProject removes a project from the library and every section.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		cloudOK, err := h.content.Apply(r.Context(), func(c *models.CatalogData) (*models.CatalogData, error) {
			if _, ok := catalog.FindProject(c, projectID); !ok {
				return nil, catalog.ErrUnknownProject
			}
			return catalog.DeleteProject(c, projectID), nil
		})
		if errors.Is(err, catalog.ErrUnknownProject) {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status":  "success",
			"cloud":   cloudStatus(cloudOK),
			"message": "project deleted successfully",
		})
	}
}
