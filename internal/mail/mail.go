// Package mail hands accepted form submissions off to an SMTP relay.
package mail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	gomail "github.com/wneessen/go-mail"

	"triviatime/internal/config"
)

type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Body    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New returns an SMTP sender when a host is configured and a logging sender
// otherwise.
func New(cfg config.Config) Sender {
	if cfg.SMTPHost == "" {
		return LogSender{}
	}
	return &SMTPSender{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
	}
}

type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return errors.New("mail: no recipients")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m, err := build(msg, time.Now())
	if err != nil {
		return err
	}
	opts := []gomail.Option{
		gomail.WithPort(s.Port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}
	if s.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.Username),
			gomail.WithPassword(s.Password),
		)
	}
	client, err := gomail.NewClient(s.Host, opts...)
	if err != nil {
		return fmt.Errorf("mail client for %s: %w", s.Host, err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send mail to %s: %w", strings.Join(msg.To, ","), err)
	}
	log.Printf("mail sent to=%s subject=%q", strings.Join(msg.To, ","), msg.Subject)
	return nil
}

// LogSender writes messages to the log instead of delivering them.
type LogSender struct{}

func (LogSender) Send(_ context.Context, msg Message) error {
	log.Printf("mail not sent (no smtp host) to=%s subject=%q\n%s", strings.Join(msg.To, ","), msg.Subject, msg.Body)
	return nil
}

// Format renders msg as a plain-text UTF-8 message with encoded headers.
func Format(msg Message, now time.Time) ([]byte, error) {
	m, err := build(msg, now)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("render mail: %w", err)
	}
	return buf.Bytes(), nil
}

func build(msg Message, now time.Time) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("mail from %q: %w", msg.From, err)
	}
	if err := m.To(msg.To...); err != nil {
		return nil, fmt.Errorf("mail to %s: %w", strings.Join(msg.To, ","), err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(stripNewlines(msg.ReplyTo)); err != nil {
			return nil, fmt.Errorf("mail reply-to %q: %w", msg.ReplyTo, err)
		}
	}
	m.Subject(stripNewlines(msg.Subject))
	m.SetDateWithValue(now)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)
	return m, nil
}

// stripNewlines keeps submitted values from injecting headers.
func stripNewlines(value string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(value)
}
