package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"OPENAI_TTS_MODEL", "WORK_DIR", "OPENAI_ALLOWED_HOSTS", "FFMPEG_PATH", "FFPROBE_PATH"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.OpenAI.Model != "tts-1" {
		t.Fatalf("unexpected model default: %q", cfg.OpenAI.Model)
	}
	if cfg.FFmpegPath != "ffmpeg" || cfg.FFprobePath != "ffprobe" {
		t.Fatalf("unexpected media tool defaults: %q/%q", cfg.FFmpegPath, cfg.FFprobePath)
	}
	if cfg.WorkRoot != ".work" {
		t.Fatalf("unexpected work root default: %q", cfg.WorkRoot)
	}
	if cfg.OpenAI.AllowedHosts != nil {
		t.Fatalf("expected nil allowed hosts, got %v", cfg.OpenAI.AllowedHosts)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-x")
	t.Setenv("OPENAI_ALLOWED_HOSTS", " api.openai.com , ,proxy.internal ")
	t.Setenv("YOUTUBE_CLIENT_ID", "cid")
	t.Setenv("WORK_DIR", "/tmp/runs")
	t.Setenv("FFMPEG_PATH", "/opt/ffmpeg/bin/ffmpeg")

	cfg := Load()
	if cfg.OpenAI.APIKey != "sk-x" {
		t.Fatalf("api key not loaded")
	}
	if len(cfg.OpenAI.AllowedHosts) != 2 || cfg.OpenAI.AllowedHosts[1] != "proxy.internal" {
		t.Fatalf("unexpected allowed hosts: %v", cfg.OpenAI.AllowedHosts)
	}
	if cfg.YouTube.Credentials.ClientID != "cid" {
		t.Fatalf("youtube credentials not loaded")
	}
	if cfg.WorkRoot != "/tmp/runs" {
		t.Fatalf("work root not loaded: %q", cfg.WorkRoot)
	}
	if cfg.FFmpegPath != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("ffmpeg path not loaded: %q", cfg.FFmpegPath)
	}
}
