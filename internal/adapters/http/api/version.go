// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// VersionHandler reports the build version. The version string is owned by
// the presentation layer and injected at construction.
type VersionHandler struct {
	version string
}

// NewVersionHandler creates a new version handler.
func NewVersionHandler(version string) *VersionHandler {
	return &VersionHandler{version: version}
}

type versionResponse struct {
	Version string `json:"version"`
}

// HandleVersion handles GET /version requests.
func (h *VersionHandler) HandleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, versionResponse{Version: h.version})
}
