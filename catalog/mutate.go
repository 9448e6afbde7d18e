package catalog

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/jamesfcoton/site-backend/models"
)

// Section keys for the two singleton sections; anything else is a category id.
const (
	SectionHighlight = "highlight"
	SectionTop10     = "top10"
)

var (
	ErrUnknownProject = errors.New("project not in library")
	ErrUnknownSection = errors.New("unknown section")
)

// Every transform below takes the current catalog and returns a fresh value
// built from a deep copy, so the caller can persist the result while readers
// keep the old snapshot.

// NewProjectID returns a fresh project id.
func NewProjectID() string { return "p-" + uuid.NewString() }

// NewCategoryID returns a fresh category id.
func NewCategoryID() string { return "c-" + uuid.NewString() }

// FindProject looks up a library entry by id.
func FindProject(c *models.CatalogData, id string) (models.Movie, bool) {
	if i := indexByID(c.Library, id); i >= 0 {
		return c.Library[i].Clone(), true
	}
	return models.Movie{}, false
}

// CreateProject prepends a fully-defaulted placeholder to the library. The
// new project belongs to no section until explicitly added.
func CreateProject(c *models.CatalogData) (*models.CatalogData, models.Movie) {
	out := c.Clone()
	created := models.NewProjectTemplate(NewProjectID())
	out.Library = append([]models.Movie{created}, out.Library...)
	return &out, created
}

// SaveProject replaces the library entry with the edited movie and
// propagates the replacement to the highlight, top10, and every category, so
// all occurrences of the id carry identical field values afterwards. Tags
// are deduplicated exactly (case preserved) before storing.
func SaveProject(c *models.CatalogData, edited models.Movie) (*models.CatalogData, error) {
	if indexByID(c.Library, edited.ID) < 0 {
		return nil, ErrUnknownProject
	}

	edited = edited.Clone()
	edited.Tags = dedupeTags(edited.Tags)

	out := c.Clone()
	replaceByID(out.Library, edited)
	if out.Highlight.ID == edited.ID {
		out.Highlight = edited.Clone()
	}
	replaceByID(out.Top10, edited)
	for i := range out.Categories {
		replaceByID(out.Categories[i].Movies, edited)
	}
	return &out, nil
}

// DeleteProject removes the id from the library, top10, and every category.
// When the deleted movie was the highlight, the first remaining library
// entry takes over, or a placeholder derived from the deleted movie when the
// library is now empty.
func DeleteProject(c *models.CatalogData, id string) *models.CatalogData {
	deleted := c.Highlight
	if i := indexByID(c.Library, id); i >= 0 {
		deleted = c.Library[i]
	}

	out := c.Clone()
	out.Library = removeByID(out.Library, id)
	out.Top10 = removeByID(out.Top10, id)
	for i := range out.Categories {
		out.Categories[i].Movies = removeByID(out.Categories[i].Movies, id)
	}

	if out.Highlight.ID == id {
		if len(out.Library) > 0 {
			out.Highlight = out.Library[0].Clone()
		} else {
			out.Highlight = models.PlaceholderMovie(deleted)
		}
	}
	return &out
}

// AddToSection places a movie into a section. The highlight is replaced
// unconditionally; list sections ignore ids already present.
func AddToSection(c *models.CatalogData, sectionKey string, movie models.Movie) (*models.CatalogData, error) {
	out := c.Clone()
	movie = movie.Clone()

	switch sectionKey {
	case SectionHighlight:
		out.Highlight = movie
	case SectionTop10:
		if indexByID(out.Top10, movie.ID) < 0 {
			out.Top10 = append(out.Top10, movie)
		}
	default:
		cat := categoryByID(&out, sectionKey)
		if cat == nil {
			return nil, ErrUnknownSection
		}
		if indexByID(cat.Movies, movie.ID) < 0 {
			cat.Movies = append(cat.Movies, movie)
		}
	}
	return &out, nil
}

// RemoveFromSection drops an id from a list section. The highlight is a
// single value, not a list; removing from it is not a defined operation.
func RemoveFromSection(c *models.CatalogData, sectionKey, id string) (*models.CatalogData, error) {
	out := c.Clone()

	switch sectionKey {
	case SectionTop10:
		out.Top10 = removeByID(out.Top10, id)
	default:
		cat := categoryByID(&out, sectionKey)
		if cat == nil {
			return nil, ErrUnknownSection
		}
		cat.Movies = removeByID(cat.Movies, id)
	}
	return &out, nil
}

// Reorder moves the element at from to position to within a section's list,
// leaving every other element's relative order unchanged. Equal or
// out-of-range indices leave the catalog untouched.
func Reorder(c *models.CatalogData, sectionKey string, from, to int) (*models.CatalogData, error) {
	out := c.Clone()

	switch sectionKey {
	case SectionTop10:
		out.Top10 = spliceMove(out.Top10, from, to)
	default:
		cat := categoryByID(&out, sectionKey)
		if cat == nil {
			return nil, ErrUnknownSection
		}
		cat.Movies = spliceMove(cat.Movies, from, to)
	}
	return &out, nil
}

// ReorderCategories moves a whole category row.
func ReorderCategories(c *models.CatalogData, from, to int) *models.CatalogData {
	out := c.Clone()
	if from == to || from < 0 || to < 0 || from >= len(out.Categories) || to >= len(out.Categories) {
		return &out
	}
	moved := out.Categories[from]
	rest := append(out.Categories[:from:from], out.Categories[from+1:]...)
	out.Categories = append(rest[:to:to], append([]models.Category{moved}, rest[to:]...)...)
	return &out
}

// RenameSection sets the display title of a section: the top-level title
// fields for the singletons, the category's own title otherwise.
func RenameSection(c *models.CatalogData, sectionKey, title string) (*models.CatalogData, error) {
	out := c.Clone()

	switch sectionKey {
	case SectionHighlight:
		out.HighlightTitle = title
	case SectionTop10:
		out.Top10Title = title
	default:
		cat := categoryByID(&out, sectionKey)
		if cat == nil {
			return nil, ErrUnknownSection
		}
		cat.Title = title
	}
	return &out, nil
}

// CreateCategory appends an empty category with a fresh id.
func CreateCategory(c *models.CatalogData, title string) (*models.CatalogData, models.Category) {
	out := c.Clone()
	created := models.Category{ID: NewCategoryID(), Title: title, Movies: []models.Movie{}}
	out.Categories = append(out.Categories, created)
	return &out, created
}

// DeleteCategory removes the category and its movie associations; the
// movies themselves stay in the library.
func DeleteCategory(c *models.CatalogData, id string) *models.CatalogData {
	out := c.Clone()
	kept := out.Categories[:0]
	for _, cat := range out.Categories {
		if cat.ID != id {
			kept = append(kept, cat)
		}
	}
	out.Categories = kept
	return &out
}

// PagesContent carries the about/contact page fields edited as one form.
type PagesContent struct {
	AboutText     string `json:"aboutText"`
	AboutImage    string `json:"aboutImage"`
	ContactText   string `json:"contactText"`
	EmailPersonal string `json:"emailPersonal"`
	EmailAgent    string `json:"emailAgent"`
}

// UpdatePages replaces the page-content fields wholesale.
func UpdatePages(c *models.CatalogData, pages PagesContent) *models.CatalogData {
	out := c.Clone()
	out.AboutText = pages.AboutText
	out.AboutImage = pages.AboutImage
	out.ContactText = pages.ContactText
	out.EmailPersonal = pages.EmailPersonal
	out.EmailAgent = pages.EmailAgent
	return &out
}

// UpdateBadge sets the hero badge text and color.
func UpdateBadge(c *models.CatalogData, text, color string) *models.CatalogData {
	out := c.Clone()
	out.HeroBadgeText = text
	out.HeroBadgeColor = color
	return &out
}

// UpdateTheme sets the site theme and marquee colors.
func UpdateTheme(c *models.CatalogData, theme, marqueeColor, marqueeTextColor string) *models.CatalogData {
	out := c.Clone()
	out.ThemeColor = theme
	out.MarqueeColor = marqueeColor
	out.MarqueeTextColor = marqueeTextColor
	return &out
}

// SplitTags breaks free-form tag input on whitespace and commas, dropping
// empty fragments. Casing is preserved; search lowers only when comparing.
func SplitTags(input string) []string {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// dedupeTags removes exact duplicates, keeping first-seen order and casing.
func dedupeTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

func indexByID(movies []models.Movie, id string) int {
	for i, m := range movies {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func replaceByID(movies []models.Movie, edited models.Movie) {
	for i, m := range movies {
		if m.ID == edited.ID {
			movies[i] = edited.Clone()
		}
	}
}

func removeByID(movies []models.Movie, id string) []models.Movie {
	kept := movies[:0]
	for _, m := range movies {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	return kept
}

func categoryByID(c *models.CatalogData, id string) *models.Category {
	for i := range c.Categories {
		if c.Categories[i].ID == id {
			return &c.Categories[i]
		}
	}
	return nil
}

func spliceMove(movies []models.Movie, from, to int) []models.Movie {
	if from == to || from < 0 || to < 0 || from >= len(movies) || to >= len(movies) {
		return movies
	}
	moved := movies[from]
	rest := append(movies[:from:from], movies[from+1:]...)
	return append(rest[:to:to], append([]models.Movie{moved}, rest[to:]...)...)
}
