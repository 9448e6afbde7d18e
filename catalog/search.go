package catalog

import (
	"sort"
	"strings"

	"github.com/jamesfcoton/site-backend/models"
)

// Field weights for the smart search. Each field contributes at most once
// per movie regardless of how many of its values match.
const (
	weightTitle    = 10
	weightGenre    = 5
	weightTags     = 5
	weightIndustry = 5
	weightMood     = 8
	weightKeywords = 4
	weightVisual   = 4
	weightSynopsis = 2
)

// Rank scores every library movie against a free-text query and returns the
// matches ordered by descending score. Ties keep their library order. An
// empty query matches nothing.
func Rank(library []models.Movie, query string) []models.Movie {
	q := strings.ToLower(query)
	if q == "" {
		return []models.Movie{}
	}

	type scored struct {
		movie models.Movie
		score int
	}

	var hits []scored
	for _, m := range library {
		if s := Score(m, q); s > 0 {
			hits = append(hits, scored{movie: m, score: s})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	out := make([]models.Movie, len(hits))
	for i, h := range hits {
		out[i] = h.movie
	}
	return out
}

// Score computes the weighted match score of one movie against an
// already-lowercased query. Tags keep their stored casing and are lowered
// only here, at comparison time.
func Score(m models.Movie, loweredQuery string) int {
	score := 0
	if strings.Contains(strings.ToLower(m.Title), loweredQuery) {
		score += weightTitle
	}
	if strings.Contains(strings.ToLower(m.Genre), loweredQuery) {
		score += weightGenre
	}
	if anyContains(m.Tags, loweredQuery) {
		score += weightTags
	}

	if a := m.AIAnalysis; a != nil {
		if strings.Contains(strings.ToLower(a.Industry), loweredQuery) {
			score += weightIndustry
		}
		if anyContains(a.MoodVibe, loweredQuery) {
			score += weightMood
		}
		if anyContains(a.Keywords, loweredQuery) {
			score += weightKeywords
		}
		if anyContains(a.VisualElements, loweredQuery) {
			score += weightVisual
		}
		if strings.Contains(strings.ToLower(a.SynopsisPitch), loweredQuery) {
			score += weightSynopsis
		}
	}
	return score
}

func anyContains(values []string, loweredQuery string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), loweredQuery) {
			return true
		}
	}
	return false
}
