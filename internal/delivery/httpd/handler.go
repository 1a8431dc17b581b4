package httpd

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/AliShahidF2023-752/aiplaegcheck/internal/service"
	"github.com/AliShahidF2023-752/aiplaegcheck/pkg/utils"
)

type Handler struct {
	checkService    service.CheckService
	rephraseService service.RephraseService
	maxUploadSize   int64
	logger          zerolog.Logger
}

func NewHandler(
	checkService service.CheckService,
	rephraseService service.RephraseService,
	maxUploadSize int64,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		checkService:    checkService,
		rephraseService: rephraseService,
		maxUploadSize:   maxUploadSize,
		logger:          logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/health", h.HealthCheck)
	router.Post("/check", h.Check)
	router.Post("/rephrase", h.Rephrase)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "aiplaegcheck",
		"timestamp": time.Now().UTC(),
	}

	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	utils.WriteJSON(w, status, data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	utils.ErrorResponse(w, status, message)
}
