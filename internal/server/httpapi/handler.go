package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/launchkeeper/internal/common"
	"github.com/dmitrijs2005/launchkeeper/internal/logging"
	"github.com/dmitrijs2005/launchkeeper/internal/server/services"
)

// Request bodies above these sizes are rejected before decoding.
const (
	maxJoinBody     = 4 << 10
	maxProfilesBody = 64 << 10
)

type handler struct {
	launcher *services.Launcher
	logger   logging.Logger
}

type joinRequest struct {
	AccessToken     string `json:"accessToken"`
	SelectedProfile string `json:"selectedProfile"`
	ServerID        string `json:"serverId"`
}

// join handles POST /sessionserver/session/minecraft/join.
func (h *handler) join(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxJoinBody)

	var req joinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, badRequest("Malformed request body."))
		return
	}

	ok, err := h.launcher.Join(r.Context(), req.AccessToken, canonicalUUID(req.SelectedProfile), req.ServerID)
	if err != nil {
		writeError(w, err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusForbidden, errorBody{codeForbidden, "Invalid token."})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// hasJoined handles GET /sessionserver/session/minecraft/hasJoined. A player
// that is unknown or bound elsewhere gets an empty 204, as game servers expect.
func (h *handler) hasJoined(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	resp, err := h.launcher.HasJoined(r.Context(), q.Get("username"), q.Get("serverId"))
	if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorInvalidSession) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	h.writeProfile(w, r, resp.UserUUID, resp.Username, resp.SkinURL, resp.CapeURL)
}

// profile handles GET /sessionserver/session/minecraft/profile/{uuid}.
func (h *handler) profile(w http.ResponseWriter, r *http.Request) {
	id := canonicalUUID(mux.Vars(r)["uuid"])

	resp, err := h.launcher.Profile(r.Context(), id)
	if errors.Is(err, common.ErrorNotFound) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	h.writeProfile(w, r, resp.UserUUID, resp.Username, resp.SkinURL, resp.CapeURL)
}

// profiles handles POST /api/profiles/minecraft.
func (h *handler) profiles(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxProfilesBody)

	var names []string
	if err := json.NewDecoder(r.Body).Decode(&names); err != nil {
		writeError(w, badRequest("Expected a JSON array of names."))
		return
	}

	found, err := h.launcher.Profiles(r.Context(), names)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]profileRef, 0, len(found))
	for _, p := range found {
		out = append(out, profileRef{ID: undashed(p.ID), Name: p.Name})
	}
	writeJSON(w, http.StatusOK, out)
}

// serverToken handles GET /server/token.
func (h *handler) serverToken(w http.ResponseWriter, r *http.Request) {
	tok, err := h.launcher.ServerToken(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": tok})
}

func (h *handler) writeProfile(w http.ResponseWriter, r *http.Request, userUUID, userName, skinURL, capeURL string) {
	p, err := newGameProfile(userUUID, userName, skinURL, capeURL)
	if err != nil {
		h.logger.Error(r.Context(), "profile encoding failed", "uuid", userUUID, "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
