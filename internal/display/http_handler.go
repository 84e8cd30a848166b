package display

import (
	"net/http"

	"pokedex/internal/httpx"
)

type HTTPHandler struct {
	component *Component
}

func NewHTTPHandler(component *Component) *HTTPHandler {
	return &HTTPHandler{component: component}
}

// List handles GET /pokemon
// @Summary List Pokémon
// @Description Current view of the mounted listing. Empty until the listing arrives.
// @Tags pokemon
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Failure 405 {object} httpx.ErrorResponse
// @Failure 503 {object} httpx.ErrorResponse
// @Router /pokemon [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		httpx.JSONError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", nil)
		return
	}

	view := h.component.Snapshot()
	if view.State == StateTornDown {
		httpx.JSONError(w, r, http.StatusServiceUnavailable, "COMPONENT_TORN_DOWN", "listing is no longer available", nil)
		return
	}

	httpx.JSONSuccess(w, r, view.Pokemon, map[string]interface{}{
		"state": view.State.String(),
		"count": len(view.Pokemon),
	})
}
