package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jamesfcoton/site-backend/errs"
	"github.com/jamesfcoton/site-backend/media"
)

// Multipart uploads are capped well above any poster or reel the site serves.
const maxUploadBytes = 512 * 1024 * 1024

type mediaHandler struct {
	responder Responder
	logger    zerolog.Logger
	storage   *media.Storage
}

func newMediaHandler(storage *media.Storage) mediaHandler {
	logger := log.With().Str("handlerName", "mediaHandler").Logger()

	return mediaHandler{
		responder: NewResponder(logger),
		logger:    logger,
		storage:   storage,
	}
}

func (h mediaHandler) writeMediaError(w http.ResponseWriter, err error) {
	if errors.Is(err, errs.ErrStorageUnavailable) {
		h.responder.WriteError(w, errs.NewServiceUnavailableError("media storage is not configured"))
		return
	}
	h.responder.WriteError(w, err)
}

func validFolder(folder string) bool {
	for _, f := range media.Folders() {
		if f == folder {
			return true
		}
	}
	return false
}

// upload stores one multipart file under the requested folder.
func (h mediaHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart body"))
			return
		}

		folder := r.FormValue("folder")
		if folder == "" {
			folder = media.FolderUploads
		}
		if !validFolder(folder) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("folder", "unknown folder"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		stored, err := h.storage.Upload(r.Context(), folder, header.Filename, file, header.Header.Get("Content-Type"))
		if err != nil {
			h.logger.Error().Err(err).Str("folder", folder).Msg("upload failed")
			h.writeMediaError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]any{
			"status": "success",
			"file":   stored,
		})
	}
}

// list serves one folder's files, or every folder when none is given.
func (h mediaHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		folder := r.URL.Query().Get("folder")

		var (
			files []media.File
			err   error
		)
		if folder == "" {
			files, err = h.storage.ListAll(r.Context())
		} else if !validFolder(folder) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("folder", "unknown folder"))
			return
		} else {
			files, err = h.storage.List(r.Context(), folder)
		}
		if err != nil {
			h.writeMediaError(w, err)
			return
		}

		if files == nil {
			files = []media.File{}
		}
		h.responder.WriteJSON(w, map[string]any{
			"files": files,
			"total": len(files),
		})
	}
}

// remove deletes one object by its full path.
func (h mediaHandler) remove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fullPath := r.URL.Query().Get("path")
		if fullPath == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("path"))
			return
		}

		if err := h.storage.Delete(r.Context(), fullPath); err != nil {
			h.writeMediaError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "file deleted successfully",
		})
	}
}
