package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/AliShahidF2023-752/aiplaegcheck/internal/config"
	"github.com/AliShahidF2023-752/aiplaegcheck/internal/models"
)

// stubOpenAI реализует integration.OpenAIClient для тестов
type stubOpenAI struct {
	mu         sync.Mutex
	response   string
	err        error
	calls      int
	lastSystem string
	lastUser   string
	lastTemp   float64
}

func (s *stubOpenAI) ChatCompletion(_ context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.lastSystem = systemPrompt
	s.lastUser = userPrompt
	s.lastTemp = temperature
	return s.response, s.err
}

// stubDetector реализует integration.DetectorClient. Ответы и задержки
// задаются по имени сервиса.
type stubDetector struct {
	mu       sync.Mutex
	payloads map[string]map[string]interface{}
	errors   map[string]error
	delays   map[string]time.Duration
	calls    []string
}

func newStubDetector() *stubDetector {
	return &stubDetector{
		payloads: make(map[string]map[string]interface{}),
		errors:   make(map[string]error),
		delays:   make(map[string]time.Duration),
	}
}

func (s *stubDetector) Call(_ context.Context, svc config.ExternalService, _ string) (map[string]interface{}, error) {
	s.mu.Lock()
	s.calls = append(s.calls, svc.Name)
	delay := s.delays[svc.Name]
	s.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.errors[svc.Name]; ok {
		return nil, err
	}
	if payload, ok := s.payloads[svc.Name]; ok {
		return payload, nil
	}
	return nil, fmt.Errorf("unexpected service: %s", svc.Name)
}

func (s *stubDetector) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// stubSummarizer возвращает фиксированную сводку и запоминает аргументы
type stubSummarizer struct {
	summary        string
	lastText       string
	lastPlagiarism []models.ServiceResult
	lastAIResults  []models.ServiceResult
}

func (s *stubSummarizer) Summarize(_ context.Context, text string, plagiarism, aiDetection []models.ServiceResult) string {
	s.lastText = text
	s.lastPlagiarism = plagiarism
	s.lastAIResults = aiDetection
	return s.summary
}

// stubChecker реализует CheckService для тестов перефразирования
type stubChecker struct {
	response *models.CheckResponse
	gotText  string
}

func (s *stubChecker) Check(_ context.Context, text string) *models.CheckResponse {
	s.gotText = text
	resp := *s.response
	resp.OriginalText = text
	return &resp
}
