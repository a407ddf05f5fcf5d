package ports

import (
	"context"
	"time"

	"github.com/rohitk523/adk-project/internal/types"
)

type VideoTool interface {
	Normalize(ctx context.Context, inPath, outPath string, maxDur time.Duration) error
	Mux(ctx context.Context, videoPath, audioPath, outPath string) error
	ProbeDuration(ctx context.Context, path string) (time.Duration, error)
}

type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, transcript, voice, outPath string) error
}

type VideoHost interface {
	Upload(ctx context.Context, path string, meta types.UploadMetadata) (types.UploadReceipt, error)
}

type MailSource interface {
	UnreadMessages(ctx context.Context, max int) ([]types.EmailMessage, error)
}

type Messenger interface {
	Send(ctx context.Context, text string) error
}
