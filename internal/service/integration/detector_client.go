package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/AliShahidF2023-752/aiplaegcheck/internal/config"
)

// DetectorClient выполняет один запрос к внешнему сервису проверки текста
type DetectorClient interface {
	Call(ctx context.Context, svc config.ExternalService, text string) (map[string]interface{}, error)
}

type detectorClient struct {
	timeout time.Duration
	client  *http.Client
	logger  zerolog.Logger
}

func NewDetectorClient(timeout time.Duration, logger zerolog.Logger) DetectorClient {
	return &detectorClient{
		timeout: timeout,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (c *detectorClient) Call(ctx context.Context, svc config.ExternalService, text string) (map[string]interface{}, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", svc.APIURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if svc.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+svc.APIKey)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, fmt.Errorf("request timed out after %s", c.timeout)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("request timed out after %s", c.timeout)
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("service", svc.Name).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("External service responded")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("service returned status %d: %s", resp.StatusCode, string(raw))
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if payload == nil {
		payload = map[string]interface{}{}
	}

	return payload, nil
}
