package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/AliShahidF2023-752/aiplaegcheck/internal/config"
	"github.com/AliShahidF2023-752/aiplaegcheck/internal/models"
	"github.com/AliShahidF2023-752/aiplaegcheck/internal/service/integration"
)

// CheckService прогоняет текст через все включенные сервисы проверки
// и собирает единый ответ. Отказ отдельного сервиса не прерывает проверку.
type CheckService interface {
	Check(ctx context.Context, text string) *models.CheckResponse
}

type checkService struct {
	detector   integration.DetectorClient
	summarizer Summarizer
	services   config.ServicesConfig
	logger     zerolog.Logger
}

func NewCheckService(
	detector integration.DetectorClient,
	summarizer Summarizer,
	services config.ServicesConfig,
	logger zerolog.Logger,
) CheckService {
	return &checkService{
		detector:   detector,
		summarizer: summarizer,
		services:   services,
		logger:     logger,
	}
}

func (s *checkService) Check(ctx context.Context, text string) *models.CheckResponse {
	checkID := uuid.New().String()
	log := s.logger.With().Str("check_id", checkID).Logger()

	var plagiarism, aiDetection []models.ServiceResult

	// Обе категории проверяются параллельно
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		plagiarism = s.runCategory(ctx, log, text, models.ServiceTypePlagiarism, config.Enabled(s.services.PlagiarismCheckers))
	}()
	go func() {
		defer wg.Done()
		aiDetection = s.runCategory(ctx, log, text, models.ServiceTypeAIDetection, config.Enabled(s.services.AIDetectors))
	}()
	wg.Wait()

	summary := s.summarizer.Summarize(ctx, text, plagiarism, aiDetection)

	log.Info().
		Int("plagiarism_services", len(plagiarism)).
		Int("ai_detection_services", len(aiDetection)).
		Msg("Check completed")

	return &models.CheckResponse{
		Summary:            summary,
		PlagiarismResults:  plagiarism,
		AIDetectionResults: aiDetection,
		OriginalText:       text,
	}
}

// runCategory опрашивает сервисы одной категории. Каждый вызов независим;
// результаты пишутся по индексу, поэтому порядок совпадает с конфигурацией.
func (s *checkService) runCategory(
	ctx context.Context,
	log zerolog.Logger,
	text string,
	serviceType string,
	services []config.ExternalService,
) []models.ServiceResult {
	results := make([]models.ServiceResult, len(services))

	var wg sync.WaitGroup
	for i, svc := range services {
		wg.Add(1)
		go func(i int, svc config.ExternalService) {
			defer wg.Done()

			payload, err := s.detector.Call(ctx, svc, text)
			if err != nil {
				log.Warn().
					Str("service", svc.Name).
					Str("service_type", serviceType).
					Err(err).
					Msg("External service call failed")
				results[i] = models.NewErrorResult(svc.Name, serviceType, err)
				return
			}

			results[i] = models.NewSuccessResult(svc.Name, serviceType, payload)
		}(i, svc)
	}
	wg.Wait()

	return results
}
