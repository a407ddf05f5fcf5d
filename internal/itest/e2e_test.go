//go:build integration

package itest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rohitk523/adk-project/internal/config"
	"github.com/rohitk523/adk-project/internal/pipeline"
	"github.com/rohitk523/adk-project/internal/types"
)

func TestE2E(t *testing.T) {
	if os.Getenv("OPENAI_API_KEY") == "" {
		t.Fatalf("OPENAI_API_KEY is required for itest")
	}
	if os.Getenv("YOUTUBE_CLIENT_ID") == "" {
		t.Fatalf("YOUTUBE_CLIENT_ID, YOUTUBE_CLIENT_SECRET and YOUTUBE_REFRESH_TOKEN are required for itest")
	}

	tmp := t.TempDir()
	in := makeVideoFixture(t, tmp, 15)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	appCfg := config.Load()
	cfg := pipeline.Config{
		SourceVideo: in,
		Transcript:  "Here is the key idea. Step one: do this. Step two: measure results.",
		MaxDuration: 10 * time.Second,
		Title:       "itest short",
		Visibility:  "private",
		FFmpegPath:  appCfg.FFmpegPath,
		FFprobePath: appCfg.FFprobePath,
		OpenAI:      appCfg.OpenAI,
		YouTube:     appCfg.YouTube,
		WorkRoot:    tmp,
		Logf:        t.Logf,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config: %v", err)
	}

	res, err := pipeline.Run(ctx, cfg)
	if err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}
	if res.Status == types.StatusFailure {
		t.Fatalf("pipeline reported failure: %s", res.ErrorDetail)
	}
	if res.OutputPath == "" {
		t.Fatalf("missing output path in result: %+v", res)
	}
	if _, err := os.Stat(res.OutputPath); err != nil {
		t.Fatalf("missing output artifact: %v", err)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(res.OutputPath), "result.json")); err != nil {
		t.Fatalf("missing result record: %v", err)
	}

	sec, err := probeDurationSeconds(res.OutputPath)
	if err != nil {
		t.Fatalf("probe output: %v", err)
	}
	if sec > 60.5 {
		t.Fatalf("output exceeds the shorts limit: %.2fs", sec)
	}
}
