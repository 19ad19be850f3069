package pages

import (
	"javajam_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type PagesRoutesManager struct {
	logger        *gecho.Logger
	eventsService *services.EventsService
}

func NewPagesRoutesManager(
	logger *gecho.Logger,
	eventsService *services.EventsService,
) *PagesRoutesManager {
	return &PagesRoutesManager{
		logger:        logger,
		eventsService: eventsService,
	}
}

func (prm *PagesRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/music/events", prm.FetchMusicEvents)
}
