package httpd

import (
	"errors"
	"net/http"
	"strings"

	"github.com/AliShahidF2023-752/aiplaegcheck/internal/service"
)

func (h *Handler) Rephrase(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}

	text := strings.TrimSpace(r.FormValue("text"))
	if text == "" {
		writeError(w, http.StatusBadRequest, "No text provided for rephrasing.")
		return
	}

	response, err := h.rephraseService.Rephrase(r.Context(), text)
	if err != nil {
		h.logger.Error().Err(err).Msg("Rephrase request failed")

		if errors.Is(err, service.ErrNoRephrasingServices) {
			writeError(w, http.StatusBadGateway, "No rephrasing services are enabled")
			return
		}
		writeError(w, http.StatusBadGateway, "Rephrasing failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, response)
}
