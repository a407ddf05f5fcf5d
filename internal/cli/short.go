package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rohitk523/adk-project/internal/config"
	"github.com/rohitk523/adk-project/internal/pipeline"
	"github.com/rohitk523/adk-project/internal/types"
	"github.com/spf13/cobra"
)

func newShortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "short <input.mp4>",
		Short: "Assemble a vertical short with an AI voiceover and publish it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShort(cmd, args[0])
		},
	}

	cmd.Flags().String("transcript", "", "Voiceover transcript text")
	cmd.Flags().String("transcript-file", "", "File to read the transcript from")
	cmd.Flags().String("voice", "", "Voice selector (default alloy)")
	cmd.Flags().Int("duration", 0, "Max duration in seconds (default and cap: 60)")
	cmd.Flags().String("title", "", "Video title")
	cmd.Flags().String("description", "", "Video description")
	cmd.Flags().StringSlice("tags", nil, "Video tags")
	cmd.Flags().String("category", "", "Hosting category id")
	cmd.Flags().String("visibility", "", "public, private or unlisted")

	return cmd
}

func runShort(cmd *cobra.Command, input string) error {
	transcript, _ := cmd.Flags().GetString("transcript")
	transcriptFile, _ := cmd.Flags().GetString("transcript-file")
	voice, _ := cmd.Flags().GetString("voice")
	durationSec, _ := cmd.Flags().GetInt("duration")
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	tags, _ := cmd.Flags().GetStringSlice("tags")
	category, _ := cmd.Flags().GetString("category")
	visibility, _ := cmd.Flags().GetString("visibility")

	if transcript == "" && transcriptFile != "" {
		b, err := os.ReadFile(transcriptFile)
		if err != nil {
			return fmt.Errorf("read transcript file: %w", err)
		}
		transcript = string(b)
	}
	if transcript == "" {
		return errors.New("--transcript or --transcript-file is required")
	}

	absIn, err := filepath.Abs(input)
	if err != nil {
		return err
	}

	appCfg := config.Load()
	cfg := pipeline.Config{
		SourceVideo: absIn,
		Transcript:  transcript,
		Voice:       voice,
		MaxDuration: time.Duration(durationSec) * time.Second,
		Title:       title,
		Description: description,
		Tags:        tags,
		CategoryID:  category,
		Visibility:  visibility,
		FFmpegPath:  appCfg.FFmpegPath,
		FFprobePath: appCfg.FFprobePath,
		OpenAI:      appCfg.OpenAI,
		YouTube:     appCfg.YouTube,
		WorkRoot:    appCfg.WorkRoot,
		Logf:        logf,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Hour)
	defer cancel()

	res, err := pipeline.Run(ctx, cfg)
	if err != nil {
		return err
	}

	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))

	if res.Status == types.StatusFailure {
		return errors.New(res.ErrorDetail)
	}
	return nil
}
