package services

import (
	"javajam_server/structs"

	"github.com/MonkyMars/gecho"
)

// EventsService serves the music-nights page. The lineup changes a few
// times a year by code change, so it lives here rather than in the
// database.
type EventsService struct {
	logger *gecho.Logger
}

func NewEventsService(logger *gecho.Logger) *EventsService {
	return &EventsService{
		logger: logger,
	}
}

var musicEvents = []structs.MusicEvent{
	{
		Month:       "JANUARY",
		Artist:      "Melanie Morris",
		Image:       "/images/melanie.jpg",
		Description: "Melanie Morris entertains with her melodic folk style.",
	},
	{
		Month:       "FEBRUARY",
		Artist:      "Tahoe Greg",
		Image:       "/images/greg.jpg",
		Description: "Tahoe Greg is back from his tour. New songs. New stories.",
	},
}

const musicIntro = "The first Friday night each month at JavaJam is a special night. " +
	"Join us from 8pm to 11pm for some music you won't want to miss!"

func (es *EventsService) GetMusicPage() *structs.MusicPage {
	return &structs.MusicPage{
		Intro:  musicIntro,
		Events: musicEvents,
	}
}
