package catalog

import (
	"github.com/google/uuid"

	"github.com/jamesfcoton/site-backend/models"
)

// AppendMarquee adds a banner entry with a fresh id to the end of the list.
func AppendMarquee(items []models.MarqueeItem, text, link string) ([]models.MarqueeItem, models.MarqueeItem) {
	created := models.MarqueeItem{ID: uuid.NewString(), Text: text, Link: link}
	out := make([]models.MarqueeItem, 0, len(items)+1)
	out = append(out, items...)
	out = append(out, created)
	return out, created
}

// RemoveMarquee filters out the entry with the given id, preserving order.
func RemoveMarquee(items []models.MarqueeItem, id string) []models.MarqueeItem {
	out := make([]models.MarqueeItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}
