package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/rohitk523/adk-project/internal/types"
)

// Shorts are always 1080x1920 (9:16), libx264 at 2M with aac at 128k.
const (
	scaleCropFilter = "scale=1080:1920:force_original_aspect_ratio=increase,crop=1080:1920"
	videoBitrate    = "2M"
	audioBitrate    = "128k"
)

type Adapter struct {
	ffmpeg  string
	ffprobe string
}

func New(ffmpegPath, ffprobePath string) *Adapter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Adapter{ffmpeg: ffmpegPath, ffprobe: ffprobePath}
}

// Normalize rescales and crops the source to the vertical short format,
// re-encodes, and truncates to maxDur.
func (a *Adapter) Normalize(ctx context.Context, inPath, outPath string, maxDur time.Duration) error {
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-i", inPath,
		"-vf", scaleCropFilter,
		"-t", fmtSeconds(maxDur),
		"-c:v", "libx264",
		"-c:a", "aac",
		"-b:v", videoBitrate,
		"-b:a", audioBitrate,
		"-movflags", "+faststart",
		outPath,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: ffmpeg normalize: %v\n%s", types.ErrProcessing, err, string(b))
	}
	return requireOutput(outPath, "normalize")
}

// Mux combines the normalized video stream with the synthesized audio track.
// The video stream is copied, audio is re-encoded, and -shortest truncates
// the longer stream so the shorter one determines the output duration.
func (a *Adapter) Mux(ctx context.Context, videoPath, audioPath, outPath string) error {
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-i", videoPath,
		"-i", audioPath,
		"-c:v", "copy",
		"-c:a", "aac",
		"-b:a", audioBitrate,
		"-map", "0:v:0",
		"-map", "1:a:0",
		"-shortest",
		"-movflags", "+faststart",
		outPath,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: ffmpeg mux: %v\n%s", types.ErrProcessing, err, string(b))
	}
	return requireOutput(outPath, "mux")
}

func (a *Adapter) ProbeDuration(ctx context.Context, path string) (time.Duration, error) {
	cmd := exec.CommandContext(ctx, a.ffprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("%w: ffprobe duration: %v\n%s", types.ErrProcessing, err, string(b))
	}
	s := strings.TrimSpace(string(b))
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: parse duration %q: %v", types.ErrProcessing, s, err)
	}
	return time.Duration(sec * float64(time.Second)), nil
}

func requireOutput(path, stage string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: ffmpeg %s produced no output at %s", types.ErrProcessing, stage, path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("%w: ffmpeg %s produced an empty file at %s", types.ErrProcessing, stage, path)
	}
	return nil
}

func fmtSeconds(d time.Duration) string {
	sec := float64(d) / float64(time.Second)
	return strconv.FormatFloat(sec, 'f', 3, 64)
}
