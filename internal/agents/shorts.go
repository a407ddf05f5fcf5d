package agents

import (
	"path/filepath"
	"time"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"

	"github.com/rohitk523/adk-project/internal/config"
	"github.com/rohitk523/adk-project/internal/domain/voices"
	"github.com/rohitk523/adk-project/internal/pipeline"
	"github.com/rohitk523/adk-project/internal/ports/adapters/ffmpeg"
	"github.com/rohitk523/adk-project/internal/ports/adapters/openaitts"
	"github.com/rohitk523/adk-project/internal/ports/adapters/youtube"
	"github.com/rohitk523/adk-project/internal/types"
	"github.com/rohitk523/adk-project/internal/usecase"
)

// NewShortMakerAgent builds the agent that assembles vertical shorts from a
// background video and a transcript, and publishes them.
func NewShortMakerAgent(cfg config.Config) (agent.Agent, error) {
	tools, err := ShortMakerTools(cfg)
	if err != nil {
		return nil, err
	}
	return llmagent.New(llmagent.Config{
		Name: "short_maker",
		Description: "Agent that creates vertical shorts by combining background video " +
			"with an AI-generated voiceover and uploads them to the hosting service.",
		Instruction: "You are a short-video creation assistant. You can normalize videos " +
			"to the 9:16 shorts format, generate text-to-speech voiceovers, combine them, " +
			"and publish the result. Prefer the create_short tool for the full pipeline; " +
			"use the stage tools only when the user asks for a single step.",
		Tools: tools,
	})
}

// ShortMakerTools returns the short-maker tool set.
func ShortMakerTools(cfg config.Config) ([]tool.Tool, error) {
	deps := usecase.Deps{
		Video:  ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath),
		Speech: openaitts.New(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL),
		Host:   youtube.New(cfg.YouTube.Credentials, cfg.YouTube.TokenURL, cfg.YouTube.UploadBaseURL),
	}

	var out []tool.Tool
	for _, build := range []func() (tool.Tool, error){
		func() (tool.Tool, error) { return newCreateShortTool(cfg, deps) },
		func() (tool.Tool, error) { return newNormalizeTool(cfg, deps) },
		func() (tool.Tool, error) { return newVoiceoverTool(cfg, deps) },
		func() (tool.Tool, error) { return newCombineTool(deps) },
		func() (tool.Tool, error) { return newUploadTool(deps) },
		newListVoicesTool,
	} {
		t, err := build()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

type createShortArgs struct {
	VideoPath   string   `json:"video_path"`
	Transcript  string   `json:"transcript"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Voice       string   `json:"voice,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	DurationSec int      `json:"duration_sec,omitempty"`
	Visibility  string   `json:"visibility,omitempty"`
}

func newCreateShortTool(cfg config.Config, deps usecase.Deps) (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name: "create_short",
		Description: "Complete pipeline: normalize the background video, generate the " +
			"voiceover, combine them and upload the finished short.",
	}, func(ctx tool.Context, args createShortArgs) (types.PipelineResult, error) {
		workspace, err := pipeline.NewWorkspace(cfg.WorkRoot, args.VideoPath)
		if err != nil {
			return types.PipelineResult{Status: types.StatusFailure, ErrorDetail: err.Error()}, nil
		}
		return usecase.New(deps).Run(ctx, usecase.Input{
			SourceVideo: args.VideoPath,
			Transcript:  args.Transcript,
			Voice:       args.Voice,
			MaxDuration: time.Duration(args.DurationSec) * time.Second,
			Title:       args.Title,
			Description: args.Description,
			Tags:        args.Tags,
			Visibility:  args.Visibility,
			Workspace:   workspace,
		}), nil
	})
}

type stageResult struct {
	Status       types.Status `json:"status"`
	OutputPath   string       `json:"output_path,omitempty"`
	ErrorMessage string       `json:"error_message,omitempty"`
}

func stageFailure(err error) stageResult {
	return stageResult{Status: types.StatusFailure, ErrorMessage: err.Error()}
}

type normalizeArgs struct {
	VideoPath   string `json:"video_path"`
	DurationSec int    `json:"duration_sec,omitempty"`
}

func newNormalizeTool(cfg config.Config, deps usecase.Deps) (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name:        "process_background_video",
		Description: "Rescale and crop a video to the 9:16 shorts format, truncated to at most 60 seconds.",
	}, func(ctx tool.Context, args normalizeArgs) (stageResult, error) {
		workspace, err := pipeline.NewWorkspace(cfg.WorkRoot, args.VideoPath)
		if err != nil {
			return stageFailure(err), nil
		}
		maxDur := time.Duration(args.DurationSec) * time.Second
		if maxDur <= 0 || maxDur > usecase.MaxDuration {
			maxDur = usecase.DefaultDuration
		}
		out := filepath.Join(workspace, "background.mp4")
		if err := deps.Video.Normalize(ctx, args.VideoPath, out, maxDur); err != nil {
			return stageFailure(err), nil
		}
		return stageResult{Status: types.StatusSuccess, OutputPath: out}, nil
	})
}

type voiceoverArgs struct {
	Transcript string `json:"transcript"`
	Voice      string `json:"voice,omitempty"`
}

func newVoiceoverTool(cfg config.Config, deps usecase.Deps) (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name:        "generate_tts_audio",
		Description: "Generate a text-to-speech voiceover from a transcript.",
	}, func(ctx tool.Context, args voiceoverArgs) (stageResult, error) {
		workspace, err := pipeline.NewWorkspace(cfg.WorkRoot, "voiceover")
		if err != nil {
			return stageFailure(err), nil
		}
		out := filepath.Join(workspace, "voiceover.mp3")
		if err := deps.Speech.Synthesize(ctx, args.Transcript, args.Voice, out); err != nil {
			return stageFailure(err), nil
		}
		return stageResult{Status: types.StatusSuccess, OutputPath: out}, nil
	})
}

type combineArgs struct {
	VideoPath string `json:"video_path"`
	AudioPath string `json:"audio_path"`
}

func newCombineTool(deps usecase.Deps) (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name:        "combine_audio_video",
		Description: "Mux a normalized video with a voiceover track; the shorter stream wins.",
	}, func(ctx tool.Context, args combineArgs) (stageResult, error) {
		out := filepath.Join(filepath.Dir(args.VideoPath), "short.mp4")
		if err := deps.Video.Mux(ctx, args.VideoPath, args.AudioPath, out); err != nil {
			return stageFailure(err), nil
		}
		return stageResult{Status: types.StatusSuccess, OutputPath: out}, nil
	})
}

type uploadArgs struct {
	VideoPath   string   `json:"video_path"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	CategoryID  string   `json:"category_id,omitempty"`
	Visibility  string   `json:"visibility,omitempty"`
}

type uploadResult struct {
	Status       types.Status `json:"status"`
	VideoID      string       `json:"video_id,omitempty"`
	VideoURL     string       `json:"video_url,omitempty"`
	ErrorMessage string       `json:"error_message,omitempty"`
}

func newUploadTool(deps usecase.Deps) (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name:        "upload_to_youtube",
		Description: "Upload a finished short to the hosting service and return its public URL.",
	}, func(ctx tool.Context, args uploadArgs) (uploadResult, error) {
		receipt, err := deps.Host.Upload(ctx, args.VideoPath, types.UploadMetadata{
			Title:       args.Title,
			Description: args.Description,
			Tags:        args.Tags,
			CategoryID:  args.CategoryID,
			Visibility:  args.Visibility,
		})
		if err != nil {
			return uploadResult{Status: types.StatusFailure, ErrorMessage: err.Error()}, nil
		}
		return uploadResult{Status: types.StatusSuccess, VideoID: receipt.VideoID, VideoURL: receipt.URL}, nil
	})
}

type listVoicesArgs struct{}

type listVoicesResult struct {
	Status  types.Status      `json:"status"`
	Voices  map[string]string `json:"supported_voices"`
	Default string            `json:"default"`
}

func newListVoicesTool() (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name:        "get_supported_voices",
		Description: "List the supported text-to-speech voices.",
	}, func(ctx tool.Context, _ listVoicesArgs) (listVoicesResult, error) {
		out := make(map[string]string, len(voices.Names()))
		for _, name := range voices.Names() {
			if d, ok := voices.Describe(name); ok {
				out[name] = d
			}
		}
		return listVoicesResult{Status: types.StatusSuccess, Voices: out, Default: voices.Default}, nil
	})
}
