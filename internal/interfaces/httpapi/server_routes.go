package httpapi

import "net/http"

// teamRoutePrefixes lists every mount point of the team catalog. The first
// matches the path the browser client calls.
var teamRoutePrefixes = []string{"/api/footballteams", "/v1/teams"}

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("/", handler.NotFound)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	for _, prefix := range teamRoutePrefixes {
		mux.HandleFunc("GET "+prefix, handler.ListTeams)
		mux.HandleFunc("GET "+prefix+"/columns", handler.ListColumns)
		mux.HandleFunc("GET "+prefix+"/search", handler.SearchTeams)
	}
}
