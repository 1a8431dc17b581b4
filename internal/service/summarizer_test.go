package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AliShahidF2023-752/aiplaegcheck/internal/models"
)

func strPtr(s string) *string { return &s }

func TestSummarizer_NoServicesEnabled(t *testing.T) {
	openai := &stubOpenAI{response: "should not be used"}
	s := NewSummarizer(openai, zerolog.Nop())

	summary := s.Summarize(context.Background(), "The sky is blue.", nil, nil)

	assert.Equal(t, NoServicesSummary, summary)
	assert.Zero(t, openai.calls, "language model must not be contacted when no services ran")
}

func TestSummarizer_DelegatesToModel(t *testing.T) {
	openai := &stubOpenAI{response: "Everything looks original."}
	s := NewSummarizer(openai, zerolog.Nop())

	plagiarism := []models.ServiceResult{
		models.NewSuccessResult("CheckerOne", models.ServiceTypePlagiarism, map[string]interface{}{"score": 0.1}),
	}
	aiDetection := []models.ServiceResult{
		{ServiceName: "DetectorOne", ServiceType: models.ServiceTypeAIDetection, Success: false, Error: strPtr("request timed out")},
	}

	summary := s.Summarize(context.Background(), "Some long analyzed text.", plagiarism, aiDetection)

	assert.Equal(t, "Everything looks original.", summary)
	require.Equal(t, 1, openai.calls)
	assert.InDelta(t, 0.5, openai.lastTemp, 0.001)
	assert.Contains(t, openai.lastUser, "Some long analyzed text.")
	assert.Contains(t, openai.lastUser, "CheckerOne")
	assert.Contains(t, openai.lastUser, "DetectorOne: Error - request timed out")
}

func TestSummarizer_FallbackOnModelFailure(t *testing.T) {
	openai := &stubOpenAI{err: errors.New("rate limit exceeded")}
	s := NewSummarizer(openai, zerolog.Nop())

	plagiarism := []models.ServiceResult{
		models.NewSuccessResult("CheckerOne", models.ServiceTypePlagiarism, map[string]interface{}{"score": 0.1}),
		{ServiceName: "CheckerTwo", ServiceType: models.ServiceTypePlagiarism, Success: false, Error: strPtr("service returned status 500")},
	}

	summary := s.Summarize(context.Background(), "text", plagiarism, nil)

	assert.Contains(t, summary, "Analysis Summary")
	assert.Contains(t, summary, "rate limit exceeded")
	assert.Contains(t, summary, "**CheckerOne**: Check completed")
	assert.Contains(t, summary, "**CheckerTwo**: service returned status 500")
	assert.Contains(t, summary, "No AI detectors were enabled.")
}

func TestSummarizer_FallbackOnEmptyCompletion(t *testing.T) {
	openai := &stubOpenAI{response: "   "}
	s := NewSummarizer(openai, zerolog.Nop())

	results := []models.ServiceResult{
		models.NewSuccessResult("CheckerOne", models.ServiceTypePlagiarism, map[string]interface{}{}),
	}

	summary := s.Summarize(context.Background(), "text", results, nil)

	assert.Contains(t, summary, "Analysis Summary")
	assert.NotContains(t, summary, "encountered an issue")
}

func TestSummarizer_ContextSnippetTruncated(t *testing.T) {
	openai := &stubOpenAI{response: "ok"}
	s := NewSummarizer(openai, zerolog.Nop())

	long := make([]rune, 2000)
	for i := range long {
		long[i] = 'a'
	}
	results := []models.ServiceResult{
		models.NewSuccessResult("CheckerOne", models.ServiceTypePlagiarism, map[string]interface{}{}),
	}

	s.Summarize(context.Background(), string(long), results, nil)

	assert.Less(t, len(openai.lastUser), 1200, "prompt must carry a snippet, not the full text")
}
