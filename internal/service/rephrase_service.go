package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/AliShahidF2023-752/aiplaegcheck/internal/config"
	"github.com/AliShahidF2023-752/aiplaegcheck/internal/models"
	"github.com/AliShahidF2023-752/aiplaegcheck/internal/service/integration"
)

// Значение api_url, при котором перефразирование идет напрямую через OpenAI
const openAIRephraser = "openai"

const rephraseSystemPrompt = "You are a professional editor. Rephrase the following text to make it " +
	"more original while preserving its meaning. Make it sound natural and human-written. " +
	"Do not add any explanations, just provide the rephrased text."

var (
	ErrNoRephrasingServices = errors.New("no rephrasing services enabled")
	ErrEmptyRephrasedText   = errors.New("rephrasing returned empty text")
)

// RephraseService перефразирует текст и заново прогоняет проверки по результату.
// В отличие от fan-out, отказ перефразирования фатален для запроса.
type RephraseService interface {
	Rephrase(ctx context.Context, text string) (*models.RephraseResponse, error)
}

type rephraseService struct {
	detector integration.DetectorClient
	openai   integration.OpenAIClient
	checker  CheckService
	services config.ServicesConfig
	logger   zerolog.Logger
}

func NewRephraseService(
	detector integration.DetectorClient,
	openai integration.OpenAIClient,
	checker CheckService,
	services config.ServicesConfig,
	logger zerolog.Logger,
) RephraseService {
	return &rephraseService{
		detector: detector,
		openai:   openai,
		checker:  checker,
		services: services,
		logger:   logger,
	}
}

func (s *rephraseService) Rephrase(ctx context.Context, text string) (*models.RephraseResponse, error) {
	enabled := config.Enabled(s.services.Rephrasing)
	if len(enabled) == 0 {
		return nil, ErrNoRephrasingServices
	}

	// Перебираем сервисы по порядку конфигурации до первого успеха
	var rephrased string
	var lastErr error
	for _, svc := range enabled {
		result, err := s.rephraseWith(ctx, svc, text)
		if err != nil {
			s.logger.Warn().Str("service", svc.Name).Err(err).Msg("Rephrasing attempt failed")
			lastErr = err
			continue
		}
		if strings.TrimSpace(result) == "" {
			lastErr = ErrEmptyRephrasedText
			continue
		}
		rephrased = result
		lastErr = nil
		break
	}
	if lastErr != nil {
		return nil, fmt.Errorf("rephrasing failed: %w", lastErr)
	}

	check := s.checker.Check(ctx, rephrased)

	return &models.RephraseResponse{
		Summary:            check.Summary,
		RephrasedText:      rephrased,
		PlagiarismResults:  check.PlagiarismResults,
		AIDetectionResults: check.AIDetectionResults,
		OriginalText:       text,
	}, nil
}

func (s *rephraseService) rephraseWith(ctx context.Context, svc config.ExternalService, text string) (string, error) {
	if svc.APIURL == openAIRephraser {
		return s.openai.ChatCompletion(ctx, rephraseSystemPrompt, text, 0.7)
	}

	payload, err := s.detector.Call(ctx, svc, text)
	if err != nil {
		return "", err
	}

	if v, ok := payload["rephrased_text"].(string); ok && v != "" {
		return v, nil
	}
	if v, ok := payload["text"].(string); ok {
		return v, nil
	}

	return "", fmt.Errorf("service response contains no rephrased text")
}
