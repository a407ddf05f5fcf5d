package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rohitk523/adk-project/internal/config"
	"github.com/rohitk523/adk-project/internal/mailbrief"
	"github.com/rohitk523/adk-project/internal/ports/adapters/gmail"
	"github.com/rohitk523/adk-project/internal/ports/adapters/telegram"
	"github.com/rohitk523/adk-project/internal/types"
	"github.com/spf13/cobra"
)

func newMailbriefCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mailbrief",
		Short: "Summarize unread emails and deliver the digest to Telegram",
		Args:  cobra.NoArgs,
		RunE:  runMailbrief,
	}

	cmd.Flags().Int("max", mailbrief.DefaultMaxEmails, "Max unread emails per digest")

	return cmd
}

func runMailbrief(cmd *cobra.Command, _ []string) error {
	maxEmails, _ := cmd.Flags().GetInt("max")

	appCfg := config.Load()
	if err := appCfg.Mail.Credentials.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	uc := mailbrief.New(mailbrief.Deps{
		Mail:      gmail.New(appCfg.Mail.Credentials, appCfg.Mail.TokenURL, appCfg.Mail.BaseURL),
		Messenger: telegram.New(appCfg.Telegram.BotToken, appCfg.Telegram.ChatID, appCfg.Telegram.BaseURL),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	rep := uc.Run(ctx, maxEmails)

	b, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))

	if rep.Status == types.StatusFailure {
		return errors.New(rep.ErrorDetail)
	}
	return nil
}
