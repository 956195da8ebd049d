package dto

import (
	"time"

	"github.com/distritobeef/guide-app/services/dataset-service/internal/domain"
)

func ToEventResp(e *domain.Event, now time.Time) EventResp {
	return EventResp{
		ID:          e.ID,
		Title:       e.Title,
		Venue:       e.Venue,
		Track:       string(e.Track),
		Category:    string(e.Category),
		Start:       e.Start,
		End:         e.End,
		Dress:       e.Dress,
		Color:       e.Color,
		Image:       e.Image,
		Description: e.Description,
		URL:         e.URL,
		IsFeatured:  e.IsFeatured,

		Ended: e.IsEnded(now),
		Live:  e.IsLive(now),
	}
}
