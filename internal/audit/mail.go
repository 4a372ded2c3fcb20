package audit

import "context"

// Sender delivers a single plain-text email.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// MailSink emails the Notice attached to an event, if any.
type MailSink struct {
	sender Sender
}

func NewMailSink(sender Sender) *MailSink {
	return &MailSink{sender: sender}
}

func (m *MailSink) Handle(ctx context.Context, ev Event) error {
	if ev.Notice == nil || ev.Notice.To == "" {
		return nil
	}
	return m.sender.Send(ctx, ev.Notice.To, ev.Notice.Subject, ev.Notice.Body)
}
