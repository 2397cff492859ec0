// Package httpapi exposes the session-server half of the join protocol over
// HTTP, in the shape authlib-compatible game servers and launchers expect.
package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/launchkeeper/internal/logging"
	"github.com/dmitrijs2005/launchkeeper/internal/server/services"
)

// NewRouter wires every route onto launcher.
func NewRouter(launcher *services.Launcher, logger logging.Logger) http.Handler {
	h := &handler{launcher: launcher, logger: logger}

	r := mux.NewRouter()
	r.Use(recovery(logger))
	r.Use(requestLog(logger))

	session := r.PathPrefix("/sessionserver/session/minecraft").Subrouter()
	session.HandleFunc("/join", h.join).Methods(http.MethodPost)
	session.HandleFunc("/hasJoined", h.hasJoined).Methods(http.MethodGet)
	session.HandleFunc("/profile/{uuid}", h.profile).Methods(http.MethodGet)

	r.HandleFunc("/api/profiles/minecraft", h.profiles).Methods(http.MethodPost)
	r.HandleFunc("/server/token", h.serverToken).Methods(http.MethodGet)
	r.HandleFunc("/health", health).Methods(http.MethodGet)

	return r
}

func health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
