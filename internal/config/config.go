// Package config assembles all agent settings from the environment once at
// process start. Stage logic never reads ambient state; it receives these
// structs by reference.
package config

import (
	"os"
	"strings"

	"github.com/rohitk523/adk-project/internal/ports/adapters/googleauth"
)

type Config struct {
	OpenAI   OpenAI
	YouTube  YouTube
	Mail     Mail
	Telegram Telegram

	// WorkRoot is the base directory per-invocation workspaces are created
	// under.
	WorkRoot string

	// FFmpegPath and FFprobePath override the media tool binaries looked up
	// on PATH.
	FFmpegPath  string
	FFprobePath string
}

type OpenAI struct {
	APIKey       string
	Model        string
	BaseURL      string
	AllowedHosts []string
}

type YouTube struct {
	Credentials   googleauth.Credentials
	TokenURL      string
	UploadBaseURL string
	AllowedHosts  []string
}

type Mail struct {
	Credentials  googleauth.Credentials
	TokenURL     string
	BaseURL      string
	AllowedHosts []string
}

type Telegram struct {
	BotToken     string
	ChatID       string
	BaseURL      string
	AllowedHosts []string
}

// Load reads every setting from the environment. Empty base URLs mean the
// adapter defaults apply.
func Load() Config {
	return Config{
		OpenAI: OpenAI{
			APIKey:       os.Getenv("OPENAI_API_KEY"),
			Model:        getenvDefault("OPENAI_TTS_MODEL", "tts-1"),
			BaseURL:      os.Getenv("OPENAI_BASE_URL"),
			AllowedHosts: splitHosts(os.Getenv("OPENAI_ALLOWED_HOSTS")),
		},
		YouTube: YouTube{
			Credentials: googleauth.Credentials{
				ClientID:     os.Getenv("YOUTUBE_CLIENT_ID"),
				ClientSecret: os.Getenv("YOUTUBE_CLIENT_SECRET"),
				RefreshToken: os.Getenv("YOUTUBE_REFRESH_TOKEN"),
			},
			TokenURL:      os.Getenv("GOOGLE_TOKEN_URL"),
			UploadBaseURL: os.Getenv("YOUTUBE_UPLOAD_BASE_URL"),
			AllowedHosts:  splitHosts(os.Getenv("YOUTUBE_ALLOWED_HOSTS")),
		},
		Mail: Mail{
			Credentials: googleauth.Credentials{
				ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
				ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
				RefreshToken: os.Getenv("GOOGLE_REFRESH_TOKEN"),
			},
			TokenURL:     os.Getenv("GOOGLE_TOKEN_URL"),
			BaseURL:      os.Getenv("GMAIL_BASE_URL"),
			AllowedHosts: splitHosts(os.Getenv("GMAIL_ALLOWED_HOSTS")),
		},
		Telegram: Telegram{
			BotToken:     os.Getenv("TELEGRAM_BOT_TOKEN"),
			ChatID:       os.Getenv("TELEGRAM_CHAT_ID"),
			BaseURL:      os.Getenv("TELEGRAM_BASE_URL"),
			AllowedHosts: splitHosts(os.Getenv("TELEGRAM_ALLOWED_HOSTS")),
		},
		WorkRoot:    getenvDefault("WORK_DIR", ".work"),
		FFmpegPath:  getenvDefault("FFMPEG_PATH", "ffmpeg"),
		FFprobePath: getenvDefault("FFPROBE_PATH", "ffprobe"),
	}
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func splitHosts(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
