package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerFixtureRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /fixtures/{teamID}", handler.GetFixtures)
	mux.HandleFunc("GET /fixtures/external/{teamID}", handler.GetExternalFixtures)
	mux.HandleFunc("GET /v1/teams/{teamID}/fixtures", handler.GetFixtures)
}

func registerPublicClubRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/events", handler.ListEvents)
	mux.HandleFunc("GET /v1/sponsors", handler.ListSponsors)
	mux.HandleFunc("GET /v1/feed", handler.ListFeed)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedPushRoutes(mux, handler, verifier)
}

func registerAuthorizedPushRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/push/subscriptions", RequireAuth(verifier, http.HandlerFunc(handler.ListMySubscriptions)))
	mux.Handle("POST /v1/push/subscriptions", RequireAuth(verifier, http.HandlerFunc(handler.Subscribe)))
	mux.Handle("DELETE /v1/push/subscriptions/{subscriptionID}", RequireAuth(verifier, http.HandlerFunc(handler.Unsubscribe)))
}
