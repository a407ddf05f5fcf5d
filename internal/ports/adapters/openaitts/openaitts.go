// Package openaitts synthesizes speech through the OpenAI audio endpoint.
package openaitts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rohitk523/adk-project/internal/domain/voices"
	"github.com/rohitk523/adk-project/internal/ports/adapters/httpapi"
	"github.com/rohitk523/adk-project/internal/types"
)

const (
	DefaultBaseURL = "https://api.openai.com"
	defaultModel   = "tts-1"

	requestTimeout = 90 * time.Second
)

// DefaultAllowedHosts is the base-URL allowlist used when config names none.
var DefaultAllowedHosts = []string{"api.openai.com"}

type Adapter struct {
	key     string
	model   string
	baseURL string
	client  *http.Client
}

func New(apiKey, model, baseURL string) *Adapter {
	if model == "" {
		model = defaultModel
	}
	baseURL = httpapi.NormalizeBaseURL(baseURL, DefaultBaseURL)
	return &Adapter{key: apiKey, model: model, baseURL: baseURL, client: &http.Client{Timeout: 5 * time.Minute}}
}

// Synthesize sends the transcript to the speech endpoint and writes the
// binary audio payload to outPath.
func (a *Adapter) Synthesize(ctx context.Context, transcript, voice, outPath string) error {
	if strings.TrimSpace(transcript) == "" {
		return fmt.Errorf("%w: transcript is empty", types.ErrValidation)
	}
	v, err := voices.Validate(voice)
	if err != nil {
		return err
	}

	body, err := json.Marshal(map[string]string{
		"model": a.model,
		"voice": v,
		"input": transcript,
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, "POST", a.baseURL+"/v1/audio/speech", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+a.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: speech synthesis timeout after %s", types.ErrExternalService, requestTimeout)
		}
		return fmt.Errorf("%w: %v", types.ErrExternalService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("%w: speech status %d and read body failed: %v", types.ErrExternalService, resp.StatusCode, readErr)
		}
		return fmt.Errorf("%w: speech status %d: %s",
			types.ErrExternalService, resp.StatusCode,
			httpapi.Truncate(httpapi.RedactSecrets(string(rb), a.key), 400))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read audio payload: %v", types.ErrExternalService, err)
	}
	if len(audio) == 0 {
		return fmt.Errorf("%w: speech endpoint returned an empty payload", types.ErrExternalService)
	}
	if err := os.WriteFile(outPath, audio, 0o644); err != nil {
		return fmt.Errorf("write audio file: %w", err)
	}
	return nil
}
