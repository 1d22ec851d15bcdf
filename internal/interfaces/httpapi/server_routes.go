package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metricsHandler http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/home", handler.GetHome)
	mux.HandleFunc("GET /v1/live", handler.GetLive)
	mux.HandleFunc("GET /v1/schedule", handler.GetSchedule)

	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{id}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{id}/standings", handler.GetLeagueStandings)
	mux.HandleFunc("GET /v1/leagues/{id}/fixtures", handler.GetLeagueFixtures)
	mux.HandleFunc("GET /v1/leagues/{id}/bracket", handler.GetLeagueBracket)
	mux.HandleFunc("GET /v1/leagues/{id}/stats", handler.GetLeagueStats)

	mux.HandleFunc("GET /v1/matches/{id}", handler.GetMatch)

	mux.HandleFunc("GET /v1/teams/{id}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{id}/fixtures", handler.GetTeamFixtures)
	mux.HandleFunc("GET /v1/teams/{id}/standings", handler.GetTeamStanding)
	mux.HandleFunc("GET /v1/teams/{id}/stats", handler.GetTeamStats)

	mux.HandleFunc("GET /v1/players/{id}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/players/{id}/seasons", handler.GetPlayerSeasons)
	mux.HandleFunc("GET /v1/players/{id}/appearances", handler.GetPlayerAppearances)

	mux.HandleFunc("GET /v1/notices/current", handler.GetCurrentNotice)
	mux.HandleFunc("GET /v1/share", handler.GetShare)
}
