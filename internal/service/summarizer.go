package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/AliShahidF2023-752/aiplaegcheck/internal/models"
	"github.com/AliShahidF2023-752/aiplaegcheck/internal/service/integration"
	"github.com/AliShahidF2023-752/aiplaegcheck/pkg/utils"
)

// NoServicesSummary возвращается когда ни один сервис не включен
const NoServicesSummary = "No services were enabled for this check."

const summarySystemPrompt = `You are an expert at analyzing plagiarism and AI detection results.
Generate a clear, helpful summary for the user. Include:
1. How much plagiarism was found (percentage if available)
2. How much AI-generated content was detected
3. Which parts look suspicious (if identifiable)
4. What the user should do next (clear recommendations)

Be concise but thorough. Use a friendly, helpful tone.`

// Summarizer строит итоговое описание результатов проверки.
// Никогда не возвращает ошибку: при сбоях модели деградирует до базовой сводки.
type Summarizer interface {
	Summarize(ctx context.Context, text string, plagiarism, aiDetection []models.ServiceResult) string
}

type summarizer struct {
	openai integration.OpenAIClient
	logger zerolog.Logger
}

func NewSummarizer(openai integration.OpenAIClient, logger zerolog.Logger) Summarizer {
	return &summarizer{
		openai: openai,
		logger: logger,
	}
}

func (s *summarizer) Summarize(ctx context.Context, text string, plagiarism, aiDetection []models.ServiceResult) string {
	if len(plagiarism) == 0 && len(aiDetection) == 0 {
		return NoServicesSummary
	}

	summary, err := s.openai.ChatCompletion(ctx, summarySystemPrompt, buildResultsContext(text, plagiarism, aiDetection), 0.5)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Summary generation failed, using fallback")
		return fallbackSummary(plagiarism, aiDetection, err)
	}
	if strings.TrimSpace(summary) == "" {
		return fallbackSummary(plagiarism, aiDetection, nil)
	}

	return summary
}

func buildResultsContext(text string, plagiarism, aiDetection []models.ServiceResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Text being analyzed (first 500 chars): %s\n\n", utils.Truncate(text, 500))

	b.WriteString("PLAGIARISM CHECK RESULTS:\n")
	writeResultLines(&b, plagiarism, "No plagiarism checkers were enabled or available.")

	b.WriteString("\nAI DETECTION RESULTS:\n")
	writeResultLines(&b, aiDetection, "No AI detectors were enabled or available.")

	return b.String()
}

func writeResultLines(b *strings.Builder, results []models.ServiceResult, emptyLine string) {
	if len(results) == 0 {
		fmt.Fprintf(b, "- %s\n", emptyLine)
		return
	}
	for _, r := range results {
		if r.Success {
			fmt.Fprintf(b, "- %s: %v\n", r.ServiceName, r.Result)
		} else {
			fmt.Fprintf(b, "- %s: Error - %s\n", r.ServiceName, *r.Error)
		}
	}
}

// fallbackSummary — базовая сводка без языковой модели
func fallbackSummary(plagiarism, aiDetection []models.ServiceResult, cause error) string {
	var b strings.Builder

	b.WriteString("## Analysis Summary\n\n")
	if cause != nil {
		fmt.Fprintf(&b, "*Note: AI summary generation encountered an issue: %s*\n\n", cause)
	}

	b.WriteString("### Plagiarism Check\n")
	writeFallbackLines(&b, plagiarism, "No plagiarism checkers were enabled.\n")

	b.WriteString("\n### AI Content Detection\n")
	writeFallbackLines(&b, aiDetection, "No AI detectors were enabled.\n")

	b.WriteString("\n### Recommendations\n")
	b.WriteString("Review the detailed results from each service to understand the analysis findings.\n")

	return b.String()
}

func writeFallbackLines(b *strings.Builder, results []models.ServiceResult, emptyLine string) {
	if len(results) == 0 {
		b.WriteString(emptyLine)
		return
	}
	for _, r := range results {
		if r.Success {
			fmt.Fprintf(b, "- **%s**: Check completed\n", r.ServiceName)
		}
	}
	for _, r := range results {
		if !r.Success {
			fmt.Fprintf(b, "- **%s**: %s\n", r.ServiceName, *r.Error)
		}
	}
}
