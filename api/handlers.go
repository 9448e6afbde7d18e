package api

import (
	"time"

	"github.com/jamesfcoton/site-backend/content"
	"github.com/jamesfcoton/site-backend/media"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(content *content.Service, storage *media.Storage, secret []byte, tokenTTL time.Duration) *routeHandlers {
	return &routeHandlers{
		authHandler:    newAuthHandler(content, secret, tokenTTL),
		catalogHandler: newCatalogHandler(content),
		projectHandler: newProjectHandler(content),
		sectionHandler: newSectionHandler(content),
		marqueeHandler: newMarqueeHandler(content),
		mediaHandler:   newMediaHandler(storage),
	}
}
