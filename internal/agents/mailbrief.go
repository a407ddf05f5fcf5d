package agents

import (
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"

	"github.com/rohitk523/adk-project/internal/config"
	"github.com/rohitk523/adk-project/internal/domain/mailsum"
	"github.com/rohitk523/adk-project/internal/mailbrief"
	"github.com/rohitk523/adk-project/internal/ports/adapters/gmail"
	"github.com/rohitk523/adk-project/internal/ports/adapters/telegram"
	"github.com/rohitk523/adk-project/internal/types"
)

// NewMailBriefAgent builds the agent that summarizes unread mail and delivers
// the digest over Telegram.
func NewMailBriefAgent(cfg config.Config) (agent.Agent, error) {
	tools, err := MailBriefTools(cfg)
	if err != nil {
		return nil, err
	}
	return llmagent.New(llmagent.Config{
		Name: "mail_brief",
		Description: "Agent that checks the mailbox for unread emails, renders a " +
			"plain-text digest and sends it to a Telegram chat.",
		Instruction: "You are an email summary assistant. Prefer the " +
			"check_and_send_email_summary tool for the full flow; use " +
			"get_unread_emails when the user only wants to see the messages, " +
			"create_email_summary when they want the digest without delivery, and " +
			"send_to_telegram when they supply their own text.",
		Tools: tools,
	})
}

// MailBriefTools returns the mail-brief tool set.
func MailBriefTools(cfg config.Config) ([]tool.Tool, error) {
	mail := gmail.New(cfg.Mail.Credentials, cfg.Mail.TokenURL, cfg.Mail.BaseURL)
	messenger := telegram.New(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Telegram.BaseURL)
	uc := mailbrief.New(mailbrief.Deps{Mail: mail, Messenger: messenger})

	var out []tool.Tool
	for _, build := range []func() (tool.Tool, error){
		func() (tool.Tool, error) { return newDigestTool(uc) },
		func() (tool.Tool, error) { return newUnreadTool(mail) },
		func() (tool.Tool, error) { return newSummaryTool(uc) },
		func() (tool.Tool, error) { return newSendTool(messenger) },
	} {
		t, err := build()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

type digestArgs struct {
	MaxEmails int `json:"max_emails,omitempty"`
}

func newDigestTool(uc mailbrief.Usecase) (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name: "check_and_send_email_summary",
		Description: "Fetch unread emails, build a digest and deliver it to the " +
			"configured Telegram chat. An empty inbox still sends a short note.",
	}, func(ctx tool.Context, args digestArgs) (mailbrief.Report, error) {
		return uc.Run(ctx, args.MaxEmails), nil
	})
}

type unreadArgs struct {
	MaxEmails int `json:"max_emails,omitempty"`
}

type unreadResult struct {
	Status       types.Status         `json:"status"`
	EmailCount   int                  `json:"email_count"`
	Emails       []types.EmailMessage `json:"emails,omitempty"`
	ErrorMessage string               `json:"error_message,omitempty"`
}

func newUnreadTool(mail *gmail.Adapter) (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name:        "get_unread_emails",
		Description: "Fetch the most recent unread emails with sender, subject, date and a body preview.",
	}, func(ctx tool.Context, args unreadArgs) (unreadResult, error) {
		maxEmails := args.MaxEmails
		if maxEmails <= 0 {
			maxEmails = mailbrief.DefaultMaxEmails
		}
		emails, err := mail.UnreadMessages(ctx, maxEmails)
		if err != nil {
			return unreadResult{Status: types.StatusFailure, ErrorMessage: err.Error()}, nil
		}
		return unreadResult{Status: types.StatusSuccess, EmailCount: len(emails), Emails: emails}, nil
	})
}

type summaryArgs struct {
	MaxEmails int `json:"max_emails,omitempty"`
}

func newSummaryTool(uc mailbrief.Usecase) (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name: "create_email_summary",
		Description: "Fetch unread emails and return the rendered digest text " +
			"without sending it anywhere.",
	}, func(ctx tool.Context, args summaryArgs) (mailbrief.Summary, error) {
		return uc.Summarize(ctx, args.MaxEmails), nil
	})
}

type sendArgs struct {
	Text string `json:"text"`
}

type sendResult struct {
	Status       types.Status `json:"status"`
	ErrorMessage string       `json:"error_message,omitempty"`
}

func newSendTool(messenger *telegram.Adapter) (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name:        "send_to_telegram",
		Description: "Send a plain-text message to the configured Telegram chat.",
	}, func(ctx tool.Context, args sendArgs) (sendResult, error) {
		text := args.Text
		if text == "" {
			text = mailsum.Render(nil)
		}
		if err := messenger.Send(ctx, text); err != nil {
			return sendResult{Status: types.StatusFailure, ErrorMessage: err.Error()}, nil
		}
		return sendResult{Status: types.StatusSuccess}, nil
	})
}
