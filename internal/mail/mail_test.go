package mail

import (
	"bytes"
	"context"
	"io"
	"mime"
	netmail "net/mail"
	"strings"
	"testing"
	"time"

	"triviatime/internal/config"
)

func parse(t *testing.T, msg Message) (*netmail.Message, string) {
	t.Helper()
	raw, err := Format(msg, time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	parsed, err := netmail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("read message: %v\n%s", err, raw)
	}
	body, err := io.ReadAll(parsed.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return parsed, string(body)
}

func TestFormat(t *testing.T) {
	parsed, body := parse(t, Message{
		From:    "website@example.com",
		To:      []string{"info@example.com"},
		ReplyTo: "ada@example.com",
		Subject: "Question from Ada\r\nBcc: evil@example.com",
		Body:    "Name: Ada\nMessage: hi\n",
	})

	if got := parsed.Header.Get("From"); !strings.Contains(got, "website@example.com") {
		t.Fatalf("unexpected from %q", got)
	}
	if got := parsed.Header.Get("To"); !strings.Contains(got, "info@example.com") {
		t.Fatalf("unexpected to %q", got)
	}
	if got := parsed.Header.Get("Reply-To"); !strings.Contains(got, "ada@example.com") {
		t.Fatalf("unexpected reply-to %q", got)
	}
	if got := parsed.Header.Get("Bcc"); got != "" {
		t.Fatalf("subject injected a bcc header %q", got)
	}
	if got := parsed.Header.Get("Subject"); got != "Question from Ada  Bcc: evil@example.com" {
		t.Fatalf("expected newlines stripped from subject, got %q", got)
	}
	if date, err := parsed.Header.Date(); err != nil || !date.Equal(time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %s (%v)", date, err)
	}
	if !strings.Contains(parsed.Header.Get("Content-Type"), "text/plain") {
		t.Fatalf("unexpected content type %q", parsed.Header.Get("Content-Type"))
	}
	if !strings.Contains(body, "Name: Ada") || !strings.Contains(body, "Message: hi") {
		t.Fatalf("unexpected body:\n%q", body)
	}
}

func TestFormatEncodesNonASCIISubject(t *testing.T) {
	raw, err := Format(Message{
		From:    "website@example.com",
		To:      []string{"info@example.com"},
		Subject: "Question from José Núñez",
		Body:    "Name: José Núñez\n",
	}, time.Now())
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	head, _, _ := bytes.Cut(raw, []byte("\r\n\r\n"))
	for i, b := range head {
		if b > 127 {
			t.Fatalf("raw byte %#x in headers at %d:\n%s", b, i, head)
		}
	}

	parsed, _ := parse(t, Message{From: "website@example.com", To: []string{"info@example.com"}, Subject: "Question from José Núñez"})
	subject, err := new(mime.WordDecoder).DecodeHeader(parsed.Header.Get("Subject"))
	if err != nil {
		t.Fatalf("decode subject: %v", err)
	}
	if subject != "Question from José Núñez" {
		t.Fatalf("unexpected subject %q", subject)
	}
}

func TestFormatOmitsEmptyReplyTo(t *testing.T) {
	parsed, _ := parse(t, Message{From: "a@example.com", To: []string{"b@example.com"}, Subject: "hi"})
	if _, ok := parsed.Header["Reply-To"]; ok {
		t.Fatalf("expected no reply-to header")
	}
}

func TestFormatRejectsBadAddress(t *testing.T) {
	if _, err := Format(Message{From: "a@example.com", To: []string{"not an address"}}, time.Now()); err == nil {
		t.Fatalf("expected an invalid recipient to be rejected")
	}
}

func TestNewPicksSender(t *testing.T) {
	cfg := config.Default()
	if _, ok := New(cfg).(LogSender); !ok {
		t.Fatalf("expected log sender without smtp host")
	}
	cfg.SMTPHost = "smtp.example.com"
	sender, ok := New(cfg).(*SMTPSender)
	if !ok {
		t.Fatalf("expected smtp sender")
	}
	if sender.Port != 587 {
		t.Fatalf("expected default port, got %d", sender.Port)
	}
}

func TestSMTPSenderRequiresRecipients(t *testing.T) {
	sender := &SMTPSender{Host: "localhost", Port: 25}
	if err := sender.Send(context.Background(), Message{From: "a@example.com"}); err == nil {
		t.Fatalf("expected error without recipients")
	}
}
