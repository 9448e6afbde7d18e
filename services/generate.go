// Package services holds the catalog generator, which drafts a complete
// portfolio catalog with an LLM when no persisted copy exists.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/jamesfcoton/site-backend/catalog"
	"github.com/jamesfcoton/site-backend/models"
)

const generatePrompt = `You are seeding the content backend of a film director's portfolio site.
Produce a JSON object with this exact shape and nothing else:
{
  "highlight": Movie,
  "top10": [Movie, ...up to 10],
  "categories": [{"id": string, "title": string, "movies": [Movie, ...]}, ...]
}
Movie = {"id": string, "title": string, "description": string, "genre": string,
"rating": number, "year": number, "imageUrl": string, "backdropUrl": string,
"quality": string, "matchPercentage": number, "crew": string, "tags": [string, ...]}
Invent striking, cinematic short-film and commercial projects. Titles in caps,
descriptions one or two sentences, genres varied. Ids must be unique strings.`

// CatalogGenerator drafts a fresh catalog. With no API key it serves the
// built-in sample catalog so the site always has content.
type CatalogGenerator struct {
	llm    llms.Model
	logger zerolog.Logger
}

// NewCatalogGenerator connects to Gemini when an API key is present. An
// empty key is fine; generation then falls back to the sample catalog.
func NewCatalogGenerator(ctx context.Context, apiKey, model string) *CatalogGenerator {
	gen := &CatalogGenerator{
		logger: log.With().Str("service", "generator").Logger(),
	}
	if apiKey == "" {
		return gen
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	llm, err := googleai.New(ctx, googleai.WithAPIKey(apiKey), googleai.WithDefaultModel(model))
	if err != nil {
		gen.logger.Warn().Err(err).Msg("llm unavailable, using sample catalog")
		return gen
	}
	gen.llm = llm
	return gen
}

// Generate returns a complete, normalized catalog. Any failure along the
// way degrades to the sample catalog rather than erroring out.
func (g *CatalogGenerator) Generate(ctx context.Context) *models.CatalogData {
	if g.llm == nil {
		return models.MockCatalog()
	}

	out, err := llms.GenerateFromSinglePrompt(ctx, g.llm, generatePrompt, llms.WithJSONMode())
	if err != nil {
		g.logger.Warn().Err(err).Msg("generation failed, using sample catalog")
		return models.MockCatalog()
	}

	c, err := g.parse(out)
	if err != nil {
		g.logger.Warn().Err(err).Msg("generated catalog unusable, using sample catalog")
		return models.MockCatalog()
	}
	g.logger.Info().Int("library", len(c.Library)).Msg("generated fresh catalog")
	return c
}

func (g *CatalogGenerator) parse(out string) (*models.CatalogData, error) {
	raw := extractJSON(out)
	if raw == "" {
		return nil, fmt.Errorf("no JSON object in model output")
	}

	var draft struct {
		Highlight  models.Movie      `json:"highlight"`
		Top10      []models.Movie    `json:"top10"`
		Categories []models.Category `json:"categories"`
	}
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, fmt.Errorf("decode generated catalog: %w", err)
	}
	if draft.Highlight.ID == "" || draft.Highlight.Title == "" {
		return nil, fmt.Errorf("generated catalog has no highlight")
	}

	base := models.MockCatalog()
	base.Highlight = enrich(draft.Highlight)
	base.Top10 = enrichAll(draft.Top10)
	base.Categories = draft.Categories
	for i := range base.Categories {
		if base.Categories[i].ID == "" {
			base.Categories[i].ID = catalog.NewCategoryID()
		}
		base.Categories[i].Movies = enrichAll(base.Categories[i].Movies)
	}

	// Let the normalizer derive the library and settle the document shape.
	raw2, err := json.Marshal(struct {
		*models.CatalogData
		Library []models.Movie `json:"library,omitempty"`
	}{CatalogData: base})
	if err != nil {
		return nil, err
	}
	return catalog.Normalize(raw2)
}

func enrichAll(movies []models.Movie) []models.Movie {
	out := make([]models.Movie, len(movies))
	for i, m := range movies {
		out[i] = enrich(m)
	}
	return out
}

// enrich fills the fields the model tends to leave blank with placeholder
// art keyed on the project id, so every card renders.
func enrich(m models.Movie) models.Movie {
	if m.ID == "" {
		m.ID = catalog.NewProjectID()
	}
	if m.ImageUrl == "" {
		m.ImageUrl = fmt.Sprintf("https://picsum.photos/seed/%s/400/600", m.ID)
	}
	if m.BackdropUrl == "" {
		m.BackdropUrl = fmt.Sprintf("https://picsum.photos/seed/%s-bg/1920/1080", m.ID)
	}
	if m.Quality == "" {
		m.Quality = "HD"
	}
	if m.Gallery == nil {
		m.Gallery = []models.GalleryItem{}
	}
	if m.Tags == nil {
		m.Tags = []string{}
	}
	return m
}

// extractJSON cuts the outermost JSON object from the model output, which
// may be wrapped in a markdown fence.
func extractJSON(out string) string {
	start := strings.IndexByte(out, '{')
	end := strings.LastIndexByte(out, '}')
	if start < 0 || end <= start {
		return ""
	}
	return out[start : end+1]
}
