package mailbrief

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rohitk523/adk-project/internal/types"
)

type fakeMail struct {
	emails []types.EmailMessage
	err    error
	gotMax int
}

func (f *fakeMail) UnreadMessages(_ context.Context, max int) ([]types.EmailMessage, error) {
	f.gotMax = max
	return f.emails, f.err
}

type fakeMessenger struct {
	sent []string
	err  error
}

func (f *fakeMessenger) Send(_ context.Context, text string) error {
	f.sent = append(f.sent, text)
	return f.err
}

func TestRun_SendsDigest(t *testing.T) {
	t.Parallel()

	mail := &fakeMail{emails: []types.EmailMessage{
		{Sender: "alice@example.com", Subject: "Meeting", Date: "today", Body: "3pm"},
		{Sender: "bob@example.com", Subject: "Invoice", Date: "today", Body: "attached"},
	}}
	msgr := &fakeMessenger{}

	rep := New(Deps{Mail: mail, Messenger: msgr}).Run(context.Background(), 0)

	if rep.Status != types.StatusSuccess || rep.EmailCount != 2 {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if mail.gotMax != DefaultMaxEmails {
		t.Fatalf("expected default max, got %d", mail.gotMax)
	}
	if len(msgr.sent) != 1 || !strings.Contains(msgr.sent[0], "2 unread emails") {
		t.Fatalf("unexpected digest: %v", msgr.sent)
	}
	if !strings.Contains(msgr.sent[0], "Meeting") || !strings.Contains(msgr.sent[0], "Invoice") {
		t.Fatalf("digest missing subjects: %q", msgr.sent[0])
	}
}

func TestRun_EmptyInboxStillNotifies(t *testing.T) {
	t.Parallel()

	msgr := &fakeMessenger{}
	rep := New(Deps{Mail: &fakeMail{}, Messenger: msgr}).Run(context.Background(), 5)

	if rep.Status != types.StatusSuccess || rep.EmailCount != 0 {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if len(msgr.sent) != 1 || !strings.Contains(msgr.sent[0], "No unread emails") {
		t.Fatalf("unexpected message: %v", msgr.sent)
	}
}

func TestSummarize_RendersWithoutSending(t *testing.T) {
	t.Parallel()

	mail := &fakeMail{emails: []types.EmailMessage{
		{Sender: "alice@example.com", Subject: "Meeting", Date: "today", Body: "3pm"},
	}}
	msgr := &fakeMessenger{}

	sum := New(Deps{Mail: mail, Messenger: msgr}).Summarize(context.Background(), 0)

	if sum.Status != types.StatusSuccess || sum.EmailCount != 1 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if mail.gotMax != DefaultMaxEmails {
		t.Fatalf("expected default max, got %d", mail.gotMax)
	}
	if !strings.Contains(sum.Digest, "Meeting") || !strings.Contains(sum.Digest, "1 unread emails") {
		t.Fatalf("unexpected digest: %q", sum.Digest)
	}
	if len(msgr.sent) != 0 {
		t.Fatalf("summarize must not deliver anything, sent %v", msgr.sent)
	}
}

func TestSummarize_FetchFailure(t *testing.T) {
	t.Parallel()

	mail := &fakeMail{err: errors.New("gmail status 500")}
	sum := New(Deps{Mail: mail, Messenger: &fakeMessenger{}}).Summarize(context.Background(), 5)

	if sum.Status != types.StatusFailure || sum.Digest != "" {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if !strings.Contains(sum.ErrorDetail, "gmail status 500") {
		t.Fatalf("unexpected detail: %q", sum.ErrorDetail)
	}
}

func TestRun_FetchFailure(t *testing.T) {
	t.Parallel()

	mail := &fakeMail{err: errors.New("gmail status 403")}
	msgr := &fakeMessenger{}
	rep := New(Deps{Mail: mail, Messenger: msgr}).Run(context.Background(), 5)

	if rep.Status != types.StatusFailure {
		t.Fatalf("expected failure, got %+v", rep)
	}
	if !strings.Contains(rep.ErrorDetail, "gmail status 403") {
		t.Fatalf("unexpected detail: %q", rep.ErrorDetail)
	}
	if len(msgr.sent) != 0 {
		t.Fatalf("expected no send after fetch failure")
	}
}

func TestRun_SendFailure(t *testing.T) {
	t.Parallel()

	mail := &fakeMail{emails: []types.EmailMessage{{Subject: "x"}}}
	msgr := &fakeMessenger{err: errors.New("telegram status 401")}
	rep := New(Deps{Mail: mail, Messenger: msgr}).Run(context.Background(), 5)

	if rep.Status != types.StatusFailure || rep.EmailCount != 1 {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if !strings.Contains(rep.ErrorDetail, "telegram status 401") {
		t.Fatalf("unexpected detail: %q", rep.ErrorDetail)
	}
}
