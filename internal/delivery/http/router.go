package http

import (
	"log/slog"
	"net/http"

	_ "codecamp/docs"
	"codecamp/internal/delivery/http/controllers"
	"codecamp/internal/delivery/http/helpers"
	"codecamp/internal/delivery/http/middleware"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Controllers groups the resource controllers served by the router.
type Controllers struct {
	Camps    *controllers.CampController
	Talks    *controllers.TalkController
	Speakers *controllers.SpeakerController
}

// NewRouter initializes the HTTP router with all application routes wrapped in the
// request id, logging, recover and CORS middleware.
func NewRouter(logger *slog.Logger, c Controllers, corsOrigins []string) http.Handler {
	mux := http.NewServeMux()

	// Camps
	mux.HandleFunc("GET /api/camps", c.Camps.ListCamps)
	mux.HandleFunc("GET /api/camps/search", c.Camps.SearchCamps)
	mux.HandleFunc("GET /api/camps/{moniker}", c.Camps.GetCamp)
	mux.HandleFunc("POST /api/camps", c.Camps.CreateCamp)
	mux.HandleFunc("PUT /api/camps", c.Camps.UpdateCamp)
	mux.HandleFunc("DELETE /api/camps/{moniker}", c.Camps.DeleteCamp)

	// Talks
	mux.HandleFunc("GET /api/camps/{moniker}/talks", c.Talks.ListTalks)
	mux.HandleFunc("GET /api/camps/{moniker}/talks/{talkId}", c.Talks.GetTalk)
	mux.HandleFunc("POST /api/camps/{moniker}/talks", c.Talks.CreateTalk)
	mux.HandleFunc("PUT /api/camps/{moniker}/talks/{talkId}", c.Talks.UpdateTalk)
	mux.HandleFunc("DELETE /api/camps/{moniker}/talks/{talkId}", c.Talks.DeleteTalk)

	// Speakers
	mux.HandleFunc("GET /api/speakers", c.Speakers.ListSpeakers)
	mux.HandleFunc("GET /api/speakers/{speakerId}", c.Speakers.GetSpeaker)

	mux.HandleFunc("GET /health", health)

	// Swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	var h http.Handler = mux
	h = middleware.CORS(corsOrigins, h)
	h = middleware.Recover(logger, h)
	h = middleware.LoggingMiddleware(logger, h)
	h = middleware.RequestID(h)
	return h
}

// health is the liveness probe. It does not touch the database.
func health(w http.ResponseWriter, _ *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, controllers.StatusResponse{Status: "ok"})
}
