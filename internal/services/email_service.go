package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net"
	"net/http"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/example/stabiliq/internal/metrics"
)

const sendGridEndpoint = "https://api.sendgrid.com/v3/mail/send"

// EmailMessage is a single outbound email with text and HTML bodies.
type EmailMessage struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// SendGridMailer delivers through the SendGrid v3 HTTP API.
type SendGridMailer struct {
	apiKey     string
	from       string
	endpoint   string
	httpClient *http.Client
}

func NewSendGridMailer(apiKey, from string) *SendGridMailer {
	return &SendGridMailer{
		apiKey:     apiKey,
		from:       from,
		endpoint:   sendGridEndpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (m *SendGridMailer) Name() string { return "sendgrid" }

type sendGridAddress struct {
	Email string `json:"email"`
}

type sendGridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendGridPersonalization struct {
	To []sendGridAddress `json:"to"`
}

type sendGridRequest struct {
	Personalizations []sendGridPersonalization `json:"personalizations"`
	From             sendGridAddress           `json:"from"`
	Subject          string                    `json:"subject"`
	Content          []sendGridContent         `json:"content"`
}

func (m *SendGridMailer) Send(ctx context.Context, msg EmailMessage) error {
	req := sendGridRequest{
		Personalizations: []sendGridPersonalization{{To: []sendGridAddress{{Email: msg.To}}}},
		From:             sendGridAddress{Email: m.from},
		Subject:          msg.Subject,
		Content:          []sendGridContent{{Type: "text/plain", Value: msg.Text}},
	}
	if msg.HTML != "" {
		req.Content = append(req.Content, sendGridContent{Type: "text/html", Value: msg.HTML})
	}

	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Authorization", "Bearer "+m.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("sendgrid request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}

// SMTPMailer delivers over SMTP with PLAIN auth. net/smtp upgrades to
// STARTTLS when the server offers it.
type SMTPMailer struct {
	host string
	port int
	user string
	pass string
	from string
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPMailer(host string, port int, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, user: user, pass: pass, from: from, send: smtp.SendMail}
}

func (m *SMTPMailer) Name() string { return "smtp" }

func (m *SMTPMailer) Send(ctx context.Context, msg EmailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := buildMIMEMessage(m.from, msg)
	if err != nil {
		return err
	}
	addr := net.JoinHostPort(m.host, strconv.Itoa(m.port))
	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	if err := m.send(addr, auth, m.from, []string{msg.To}, raw); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func buildMIMEMessage(from string, msg EmailMessage) ([]byte, error) {
	if _, err := mail.ParseAddress(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	parts := []struct{ contentType, value string }{{"text/plain", msg.Text}}
	if msg.HTML != "" {
		parts = append(parts, struct{ contentType, value string }{"text/html", msg.HTML})
	}
	for _, p := range parts {
		pw, err := w.CreatePart(textproto.MIMEHeader{"Content-Type": {p.contentType + "; charset=UTF-8"}})
		if err != nil {
			return nil, err
		}
		if _, err := io.WriteString(pw, p.value); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, "From: %s\r\n", from)
	fmt.Fprintf(&out, "To: %s\r\n", msg.To)
	fmt.Fprintf(&out, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&out, "Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z))
	out.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&out, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", w.Boundary())
	out.Write(body.Bytes())
	return out.Bytes(), nil
}

// NamedMailer is a provider that can report its name for logs and metrics.
type NamedMailer interface {
	Mailer
	Name() string
}

// FallbackMailer tries providers in order until one succeeds.
type FallbackMailer struct {
	providers []NamedMailer
	log       *zap.Logger
}

func NewFallbackMailer(log *zap.Logger, providers ...NamedMailer) *FallbackMailer {
	return &FallbackMailer{providers: providers, log: log.Named("mailer")}
}

func (m *FallbackMailer) Send(ctx context.Context, msg EmailMessage) error {
	if len(m.providers) == 0 {
		return ErrMailerNotConfigured
	}

	var lastErr error
	for _, p := range m.providers {
		err := p.Send(ctx, msg)
		if err == nil {
			metrics.RecordEmailDelivery(p.Name(), "sent")
			m.log.Info("email sent", zap.String("provider", p.Name()), zap.String("subject", msg.Subject))
			return nil
		}
		metrics.RecordEmailDelivery(p.Name(), "failed")
		m.log.Warn("email provider failed", zap.String("provider", p.Name()), zap.Error(err))
		lastErr = err
		if errors.Is(err, context.Canceled) {
			break
		}
	}
	return &EmailDeliveryError{Err: lastErr}
}
