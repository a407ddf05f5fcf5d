// Package pipeline wires the concrete adapters, prepares the per-invocation
// workspace, and runs the short-assembly usecase.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/rohitk523/adk-project/internal/config"
	"github.com/rohitk523/adk-project/internal/domain/voices"
	"github.com/rohitk523/adk-project/internal/ports"
	"github.com/rohitk523/adk-project/internal/ports/adapters/ffmpeg"
	"github.com/rohitk523/adk-project/internal/ports/adapters/httpapi"
	"github.com/rohitk523/adk-project/internal/ports/adapters/openaitts"
	"github.com/rohitk523/adk-project/internal/ports/adapters/youtube"
	"github.com/rohitk523/adk-project/internal/types"
	"github.com/rohitk523/adk-project/internal/usecase"
)

type Config struct {
	SourceVideo string
	Transcript  string
	Voice       string
	MaxDuration time.Duration

	Title       string
	Description string
	Tags        []string
	CategoryID  string
	Visibility  string

	FFmpegPath  string
	FFprobePath string

	OpenAI  config.OpenAI
	YouTube config.YouTube

	// WorkRoot is the base directory the run workspace is created under.
	// If empty, defaults to ".work".
	WorkRoot string

	Logf func(format string, args ...any)
}

func (c Config) Validate() error {
	if c.SourceVideo == "" {
		return errors.New("source video is empty")
	}
	if _, err := os.Stat(c.SourceVideo); err != nil {
		return fmt.Errorf("stat source video: %w", err)
	}
	if strings.TrimSpace(c.Transcript) == "" {
		return errors.New("transcript is empty")
	}
	if _, err := voices.Validate(c.Voice); err != nil {
		return err
	}
	if c.MaxDuration < 0 || c.MaxDuration > usecase.MaxDuration {
		return fmt.Errorf("duration must be within (0, %s]", usecase.MaxDuration)
	}
	switch c.Visibility {
	case "", "public", "private", "unlisted":
	default:
		return fmt.Errorf("visibility must be public, private or unlisted, got %q", c.Visibility)
	}
	if c.OpenAI.APIKey == "" {
		return errors.New("OPENAI_API_KEY is required")
	}
	if err := c.YouTube.Credentials.Validate(); err != nil {
		return err
	}
	if err := httpapi.ValidateBaseURL("OPENAI_BASE_URL", c.OpenAI.BaseURL,
		openaitts.DefaultBaseURL, allowedOrDefault(c.OpenAI.AllowedHosts, openaitts.DefaultAllowedHosts)); err != nil {
		return err
	}
	return httpapi.ValidateBaseURL("YOUTUBE_UPLOAD_BASE_URL", c.YouTube.UploadBaseURL,
		youtube.DefaultUploadBaseURL, allowedOrDefault(c.YouTube.AllowedHosts, youtube.DefaultAllowedHosts))
}

// Run prepares a collision-free workspace, executes the four stages, and
// persists the result record next to the artifacts. The returned error only
// covers workspace setup; stage outcomes live in the PipelineResult.
func Run(ctx context.Context, cfg Config) (types.PipelineResult, error) {
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	workspace, err := makeWorkspace(cfg.WorkRoot, cfg.SourceVideo, time.Now().UTC())
	if err != nil {
		return types.PipelineResult{}, err
	}
	logf("workspace: %s", workspace)

	deps := usecase.Deps{
		Video:  ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath),
		Speech: openaitts.New(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL),
		Host:   youtube.New(cfg.YouTube.Credentials, cfg.YouTube.TokenURL, cfg.YouTube.UploadBaseURL),
	}

	res := usecase.New(deps).Run(ctx, usecase.Input{
		SourceVideo: cfg.SourceVideo,
		Transcript:  cfg.Transcript,
		Voice:       cfg.Voice,
		MaxDuration: cfg.MaxDuration,
		Title:       cfg.Title,
		Description: cfg.Description,
		Tags:        cfg.Tags,
		CategoryID:  cfg.CategoryID,
		Visibility:  cfg.Visibility,
		Workspace:   workspace,
		Logf:        logf,
	})

	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return res, fmt.Errorf("marshal result: %w", err)
	}
	resultPath := filepath.Join(workspace, "result.json")
	if err := os.WriteFile(resultPath, b, 0o644); err != nil {
		return res, err
	}
	logf("result written: %s", resultPath)
	return res, nil
}

// NewWorkspace creates a unique working directory for one tool invocation.
func NewWorkspace(workRoot, seed string) (string, error) {
	return makeWorkspace(workRoot, seed, time.Now().UTC())
}

// makeWorkspace builds a unique per-invocation directory so concurrent runs
// never collide on intermediate file names.
func makeWorkspace(workRoot, sourceVideo string, now time.Time) (string, error) {
	if workRoot == "" {
		workRoot = ".work"
	}
	name := strings.TrimSuffix(filepath.Base(sourceVideo), filepath.Ext(sourceVideo))
	name = normalizePathSegment(name)
	if name == "" {
		name = "input"
	}
	ts := now.UTC().Format("20060102-150405Z")
	suffix := uuid.NewString()[:8]
	dir := filepath.Join(workRoot, "runs", fmt.Sprintf("%s-%s-%s", name, ts, suffix))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func normalizePathSegment(s string) string {
	var b strings.Builder
	prevDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

func allowedOrDefault(hosts, def []string) []string {
	if len(hosts) == 0 {
		return def
	}
	return hosts
}

// ensure adapters implement ports
var _ ports.VideoTool = (*ffmpeg.Adapter)(nil)
var _ ports.SpeechSynthesizer = (*openaitts.Adapter)(nil)
var _ ports.VideoHost = (*youtube.Adapter)(nil)
