// Package usecase sequences the four short-assembly stages and folds every
// stage error into a PipelineResult. Raw errors never escape.
package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rohitk523/adk-project/internal/domain/voices"
	"github.com/rohitk523/adk-project/internal/ports"
	"github.com/rohitk523/adk-project/internal/types"
)

const (
	// Shorts are capped at 60 seconds.
	MaxDuration     = 60 * time.Second
	DefaultDuration = 60 * time.Second

	defaultTitle = "YouTube Short"
)

type Deps struct {
	Video  ports.VideoTool
	Speech ports.SpeechSynthesizer
	Host   ports.VideoHost
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type Input struct {
	SourceVideo string
	Transcript  string
	Voice       string
	MaxDuration time.Duration

	Title       string
	Description string
	Tags        []string
	CategoryID  string
	Visibility  string

	// Workspace is the per-invocation working directory all intermediate
	// artifacts are written to. Must already exist.
	Workspace string

	Logf func(format string, args ...any)
}

// Run executes normalize -> synthesize -> mux -> publish. A failure in
// stages 1-3 yields StatusFailure; a publish failure after a successful mux
// yields StatusPartialSuccess with the combined file preserved on disk.
func (u Usecase) Run(ctx context.Context, in Input) types.PipelineResult {
	logf := in.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	if strings.TrimSpace(in.Transcript) == "" {
		return failure(fmt.Errorf("%w: transcript is empty", types.ErrValidation))
	}
	voice, err := voices.Validate(in.Voice)
	if err != nil {
		return failure(err)
	}
	maxDur := in.MaxDuration
	if maxDur == 0 {
		maxDur = DefaultDuration
	}
	if maxDur < 0 || maxDur > MaxDuration {
		return failure(fmt.Errorf("%w: duration %s is outside (0, %s]", types.ErrValidation, maxDur, MaxDuration))
	}
	title := in.Title
	if title == "" {
		title = defaultTitle
	}

	normalized := filepath.Join(in.Workspace, "background.mp4")
	logf("stage 1/4: normalizing %s", in.SourceVideo)
	if err := u.d.Video.Normalize(ctx, in.SourceVideo, normalized, maxDur); err != nil {
		return failure(err)
	}

	audio := filepath.Join(in.Workspace, "voiceover.mp3")
	logf("stage 2/4: synthesizing %d chars with voice %s", len(in.Transcript), voice)
	if err := u.d.Speech.Synthesize(ctx, in.Transcript, voice, audio); err != nil {
		return failure(err)
	}

	combined := filepath.Join(in.Workspace, "short.mp4")
	logf("stage 3/4: muxing video and voiceover")
	if err := u.d.Video.Mux(ctx, normalized, audio, combined); err != nil {
		return failure(err)
	}

	logf("stage 4/4: publishing %q", title)
	receipt, err := u.d.Host.Upload(ctx, combined, types.UploadMetadata{
		Title:       title,
		Description: in.Description,
		Tags:        in.Tags,
		CategoryID:  in.CategoryID,
		Visibility:  in.Visibility,
	})
	if err != nil {
		// The combined file survived; surface it instead of discarding the run.
		return types.PipelineResult{
			Status:      types.StatusPartialSuccess,
			OutputPath:  combined,
			ErrorDetail: err.Error(),
		}
	}

	logf("published: %s", receipt.URL)
	return types.PipelineResult{
		Status:     types.StatusSuccess,
		OutputPath: combined,
		VideoID:    receipt.VideoID,
		VideoURL:   receipt.URL,
	}
}

func failure(err error) types.PipelineResult {
	return types.PipelineResult{
		Status:      types.StatusFailure,
		ErrorDetail: err.Error(),
	}
}
