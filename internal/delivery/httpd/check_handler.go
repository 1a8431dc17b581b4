package httpd

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/AliShahidF2023-752/aiplaegcheck/pkg/pdftext"
)

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}

	text := strings.TrimSpace(r.FormValue("text"))

	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()

		if text != "" {
			writeError(w, http.StatusBadRequest, "Provide either text or a file, not both")
			return
		}

		if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
			writeError(w, http.StatusBadRequest, "Only PDF files are supported")
			return
		}

		content, readErr := io.ReadAll(file)
		if readErr != nil {
			writeError(w, http.StatusInternalServerError, "Failed to read uploaded file")
			return
		}

		extracted, extractErr := pdftext.Extract(content)
		if extractErr != nil {
			h.logger.Warn().Str("file", header.Filename).Err(extractErr).Msg("Text extraction failed")
			writeError(w, http.StatusBadRequest, "Failed to extract text from PDF: "+extractErr.Error())
			return
		}
		text = extracted

	case errors.Is(err, http.ErrMissingFile):
		// Файл не обязателен, достаточно текста

	default:
		writeError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	if text == "" {
		writeError(w, http.StatusBadRequest, "No text provided. Please provide text or upload a PDF file.")
		return
	}

	response := h.checkService.Check(r.Context(), text)
	writeJSON(w, http.StatusOK, response)
}
