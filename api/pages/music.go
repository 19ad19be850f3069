package pages

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// FetchMusicEvents handles GET /music/events: the monthly live music
// lineup and venue blurb.
func (prm *PagesRoutesManager) FetchMusicEvents(w http.ResponseWriter, r *http.Request) {
	page := prm.eventsService.GetMusicPage()

	gecho.Success(w,
		gecho.WithData(page),
		gecho.Send(),
	)
}
