package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/GHutch55/demo-app/api/v1/models"
)

const homeMessage = "Hello from the demo app!"

// HomeHandler serves the informational payload. BuildID is fixed when the
// handler is built, so environment changes after startup are not seen.
type HomeHandler struct {
	BuildID string
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	response := models.HomeResponse{
		Message: homeMessage,
		Build:   h.BuildID,
		Status:  "healthy",
	}
	json.NewEncoder(w).Encode(response)
}
