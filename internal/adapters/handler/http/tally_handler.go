package http

import (
	"net/http"

	"github.com/vncsmyrnk/ledger/internal/core/ports"
)

type TallyHandler struct {
	service ports.TallyService
}

func NewTallyHandler(service ports.TallyService) *TallyHandler {
	return &TallyHandler{
		service: service,
	}
}

// Tally godoc
// @Summary      Current tally
// @Description  Vote count and share of the total for every candidate, highest first.
// @Tags         tally
// @Produce      json
// @Success      200
// @Router       /tally [get]
func (h *TallyHandler) Tally(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Tally(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
