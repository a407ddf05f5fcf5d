// Package mailbrief checks unread mail and delivers a digest to a messenger.
package mailbrief

import (
	"context"
	"fmt"

	"github.com/rohitk523/adk-project/internal/domain/mailsum"
	"github.com/rohitk523/adk-project/internal/ports"
	"github.com/rohitk523/adk-project/internal/types"
)

// DefaultMaxEmails bounds one digest to the most recent unread messages.
const DefaultMaxEmails = 10

type Deps struct {
	Mail      ports.MailSource
	Messenger ports.Messenger
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

// Report is the terminal record of one digest run, returned to the caller
// instead of a raw error.
type Report struct {
	Status      types.Status `json:"status"`
	EmailCount  int          `json:"email_count"`
	Message     string       `json:"message"`
	ErrorDetail string       `json:"error_detail,omitempty"`
}

// Summary is the result of rendering a digest without delivering it.
type Summary struct {
	Status      types.Status `json:"status"`
	EmailCount  int          `json:"email_count"`
	Digest      string       `json:"digest"`
	ErrorDetail string       `json:"error_detail,omitempty"`
}

// Summarize fetches unread mail and renders the digest without sending it
// anywhere.
func (u Usecase) Summarize(ctx context.Context, maxEmails int) Summary {
	if maxEmails <= 0 {
		maxEmails = DefaultMaxEmails
	}

	emails, err := u.d.Mail.UnreadMessages(ctx, maxEmails)
	if err != nil {
		return Summary{Status: types.StatusFailure, ErrorDetail: fmt.Sprintf("fetch emails: %v", err)}
	}
	return Summary{
		Status:     types.StatusSuccess,
		EmailCount: len(emails),
		Digest:     mailsum.Render(emails),
	}
}

// Run fetches unread mail, renders the digest, and sends it. An empty inbox
// still sends the "no unread emails" note so the user knows the check ran.
func (u Usecase) Run(ctx context.Context, maxEmails int) Report {
	if maxEmails <= 0 {
		maxEmails = DefaultMaxEmails
	}

	emails, err := u.d.Mail.UnreadMessages(ctx, maxEmails)
	if err != nil {
		return Report{Status: types.StatusFailure, ErrorDetail: fmt.Sprintf("fetch emails: %v", err)}
	}

	digest := mailsum.Render(emails)
	if err := u.d.Messenger.Send(ctx, digest); err != nil {
		return Report{
			Status:      types.StatusFailure,
			EmailCount:  len(emails),
			ErrorDetail: fmt.Sprintf("send digest: %v", err),
		}
	}

	return Report{
		Status:     types.StatusSuccess,
		EmailCount: len(emails),
		Message:    fmt.Sprintf("Processed %d unread emails and sent the digest.", len(emails)),
	}
}
