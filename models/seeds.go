package models

// PlaceholderMovie is the highlight shown when the library is empty. The
// deleted movie's presentation fields are carried over so the hero section
// keeps its art until a real project exists.
func PlaceholderMovie(from Movie) Movie {
	out := from.Clone()
	out.ID = "empty"
	out.Title = "No Projects"
	return out
}

// NewProjectTemplate is the fully-defaulted movie inserted by the admin
// "new project" action.
func NewProjectTemplate(id string) Movie {
	return Movie{
		ID:              id,
		Title:           "NEW PROJECT",
		Description:     "",
		Genre:           "General",
		Rating:          0,
		Year:            2025,
		Quality:         "HD",
		MatchPercentage: 0,
		Crew:            "",
		ImageUrl:        "https://picsum.photos/seed/new/1920/1080",
		BackdropUrl:     "https://picsum.photos/seed/new/1920/1080",
		Gallery:         []GalleryItem{},
		Tags:            []string{},
	}
}

// DefaultMarquee seeds the banner when neither the cloud nor the local
// cache has a copy yet.
func DefaultMarquee() []MarqueeItem {
	return []MarqueeItem{
		{ID: "1", Text: "CURATED PIECES", Link: ""},
		{ID: "2", Text: "WATCH MY REELS", Link: "https://instagram.com"},
		{ID: "3", Text: "YO! REACH OUT", Link: "mailto:contact@jamesfcoton.com"},
		{ID: "4", Text: "NEW COLLECTION 2025", Link: ""},
		{ID: "5", Text: "STREAMING NOW", Link: ""},
	}
}

// MockCatalog is the deterministic starter catalog used when no persisted
// catalog exists and the generation collaborator is unavailable.
func MockCatalog() *CatalogData {
	highlight := Movie{
		ID:              "h1",
		Title:           "CHRONO NEXUS",
		Description:     "In a fragmented timeline...",
		Genre:           "Sci-Fi / Thriller",
		Rating:          9.8,
		Year:            2025,
		ImageUrl:        "https://picsum.photos/seed/chrono/1920/1080",
		Quality:         "4K",
		MatchPercentage: 99,
		Crew:            "Director: James F. Coton | DOP: L. Jenkins",
		VideoUrl:        "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/TearsOfSteel.mp4",
		HeroUrl:         "https://picsum.photos/seed/chrono/3840/2160",
		VimeoUrl:        "https://vimeo.com/76979871",
		DownloadUrl:     "https://dropbox.com",
		Gallery:         []GalleryItem{},
		Tags:            []string{"Time Travel", "Dystopian", "Sci-Fi", "Action"},
	}

	return &CatalogData{
		Highlight:        highlight,
		Top10:            []Movie{},
		Categories:       []Category{},
		Library:          []Movie{highlight},
		HighlightTitle:   "Hero Highlight",
		Top10Title:       "Top 10 / Trending",
		HeroBadgeText:    "NEW ARRIVAL",
		HeroBadgeColor:   "",
		MarqueeColor:     "",
		MarqueeTextColor: "#000000",
		ThemeColor:       "#CCFF00",
		AboutText:        "James F. Coton is a visionary director known for his brutalist aesthetic and high-octane visual storytelling. With a background in graphic design and automotive photography, he brings a unique, textured style to every frame.",
		AboutImage:       "https://picsum.photos/seed/james/800/800",
		ContactText:      "For commercial inquiries, music videos, and creative collaborations, please reach out directly or contact my representation.",
		EmailPersonal:    "contact@jamesfcoton.com",
		EmailAgent:       "agent@hollywood.com",
	}
}
