package models

// Media kinds inferred for gallery entries and storage files.
const (
	MediaImage   = "image"
	MediaVideo   = "video"
	MediaUnknown = "unknown"
)

// GalleryItem is a typed pointer to an image or video asset.
type GalleryItem struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

// AIAnalysis holds annotations attached by the content-generation
// collaborator. The core only reads it; the search ranker weighs its fields.
type AIAnalysis struct {
	Industry       string   `json:"industry"`
	MoodVibe       []string `json:"mood_vibe"`
	Keywords       []string `json:"keywords"`
	SynopsisPitch  string   `json:"synopsis_pitch"`
	VisualElements []string `json:"visual_elements"`
	ColorDominance string   `json:"color_dominance"`
}

// Movie is the central portfolio entity. JSON field names mirror the
// persisted catalog documents exactly so existing data loads unchanged.
type Movie struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	Rating      float64 `json:"rating"`
	Year        int     `json:"year"`

	ImageUrl    string `json:"imageUrl,omitempty"`
	BackdropUrl string `json:"backdropUrl,omitempty"`

	Quality         string `json:"quality,omitempty"` // HD | 4K | 8K
	MatchPercentage int    `json:"matchPercentage,omitempty"`
	Crew            string `json:"crew,omitempty"`

	VideoUrl    string `json:"videoUrl,omitempty"` // looping background preview
	HeroUrl     string `json:"heroUrl,omitempty"`  // high-res override of ImageUrl
	VimeoUrl    string `json:"vimeoUrl,omitempty"` // full external film
	DownloadUrl string `json:"downloadUrl,omitempty"`

	Gallery []GalleryItem `json:"gallery,omitempty"`
	Tags    []string      `json:"tags,omitempty"`

	AIAnalysis *AIAnalysis `json:"aiAnalysis,omitempty"`
}

// Category is a named, ordered view over a subset of movies.
type Category struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Movies []Movie `json:"movies"`
}

// CatalogData is the aggregate root persisted as a single document:
// the master library, the curated sections, and the page-content fields.
type CatalogData struct {
	Library    []Movie    `json:"library"`
	Highlight  Movie      `json:"highlight"`
	Top10      []Movie    `json:"top10"`
	Categories []Category `json:"categories"`

	HighlightTitle string `json:"highlightTitle,omitempty"`
	Top10Title     string `json:"top10Title,omitempty"`

	HeroBadgeText    string `json:"heroBadgeText,omitempty"`
	HeroBadgeColor   string `json:"heroBadgeColor,omitempty"`
	MarqueeColor     string `json:"marqueeColor,omitempty"`
	MarqueeTextColor string `json:"marqueeTextColor,omitempty"`
	ThemeColor       string `json:"themeColor,omitempty"`

	AboutText     string `json:"aboutText,omitempty"`
	AboutImage    string `json:"aboutImage,omitempty"`
	ContactText   string `json:"contactText,omitempty"`
	EmailPersonal string `json:"emailPersonal,omitempty"`
	EmailAgent    string `json:"emailAgent,omitempty"`
}

// MarqueeItem is one entry of the scrolling banner, persisted as its own
// document independent of the catalog.
type MarqueeItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Link string `json:"link"`
}

// Clone returns a deep copy of the movie.
func (m Movie) Clone() Movie {
	out := m
	if m.Gallery != nil {
		out.Gallery = make([]GalleryItem, len(m.Gallery))
		copy(out.Gallery, m.Gallery)
	}
	if m.Tags != nil {
		out.Tags = make([]string, len(m.Tags))
		copy(out.Tags, m.Tags)
	}
	if m.AIAnalysis != nil {
		a := *m.AIAnalysis
		a.MoodVibe = append([]string(nil), m.AIAnalysis.MoodVibe...)
		a.Keywords = append([]string(nil), m.AIAnalysis.Keywords...)
		a.VisualElements = append([]string(nil), m.AIAnalysis.VisualElements...)
		out.AIAnalysis = &a
	}
	return out
}

func cloneMovies(in []Movie) []Movie {
	if in == nil {
		return nil
	}
	out := make([]Movie, len(in))
	for i, m := range in {
		out[i] = m.Clone()
	}
	return out
}

// Clone returns a deep copy of the catalog. Every mutation produces a new
// catalog value from a clone so no slice is ever shared across saves.
func (c CatalogData) Clone() CatalogData {
	out := c
	out.Library = cloneMovies(c.Library)
	out.Highlight = c.Highlight.Clone()
	out.Top10 = cloneMovies(c.Top10)
	if c.Categories != nil {
		out.Categories = make([]Category, len(c.Categories))
		for i, cat := range c.Categories {
			out.Categories[i] = Category{ID: cat.ID, Title: cat.Title, Movies: cloneMovies(cat.Movies)}
		}
	}
	return out
}
