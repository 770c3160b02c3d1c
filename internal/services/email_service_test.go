package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

type stubMailer struct {
	name  string
	err   error
	calls int
}

func (s *stubMailer) Name() string { return s.name }

func (s *stubMailer) Send(context.Context, EmailMessage) error {
	s.calls++
	return s.err
}

var testEmail = EmailMessage{
	To:      "member@example.com",
	Subject: "Your Stabiliq verification code",
	Text:    "Your OTP is 123456. It is valid for 10 minutes.",
	HTML:    "<p>Your verification code is <strong>123456</strong>.</p>",
}

func TestSendGridMailer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer sg-key" {
			t.Errorf("unexpected auth header %q", r.Header.Get("Authorization"))
		}
		var req sendGridRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if req.From.Email != "noreply@stabiliq.in" || req.Personalizations[0].To[0].Email != "member@example.com" {
			t.Errorf("unexpected addresses %+v", req)
		}
		if len(req.Content) != 2 || req.Content[0].Type != "text/plain" {
			t.Errorf("unexpected content %+v", req.Content)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	m := NewSendGridMailer("sg-key", "noreply@stabiliq.in")
	m.endpoint = srv.URL
	if err := m.Send(context.Background(), testEmail); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSendGridMailerRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"bad key"}]}`))
	}))
	defer srv.Close()

	m := NewSendGridMailer("wrong", "noreply@stabiliq.in")
	m.endpoint = srv.URL
	err := m.Send(context.Background(), testEmail)
	if err == nil || !strings.Contains(err.Error(), "401") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestSMTPMailerBuildsMultipartMessage(t *testing.T) {
	m := NewSMTPMailer("smtp.example.com", 587, "user", "pass", "noreply@stabiliq.in")
	var gotAddr string
	var gotMsg []byte
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotMsg = msg
		if from != "noreply@stabiliq.in" || len(to) != 1 || to[0] != "member@example.com" {
			t.Errorf("unexpected envelope %s -> %v", from, to)
		}
		return nil
	}

	if err := m.Send(context.Background(), testEmail); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAddr != "smtp.example.com:587" {
		t.Errorf("unexpected addr %s", gotAddr)
	}
	raw := string(gotMsg)
	for _, want := range []string{"Subject: Your Stabiliq verification code", "multipart/alternative", "text/plain; charset=UTF-8", "text/html; charset=UTF-8", "Your OTP is 123456"} {
		if !strings.Contains(raw, want) {
			t.Errorf("message missing %q", want)
		}
	}
}

func TestSMTPMailerRejectsBadRecipient(t *testing.T) {
	m := NewSMTPMailer("smtp.example.com", 587, "user", "pass", "noreply@stabiliq.in")
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send must not be called")
		return nil
	}
	msg := testEmail
	msg.To = "not an address"
	if err := m.Send(context.Background(), msg); err == nil {
		t.Fatal("expected error")
	}
}

func TestFallbackMailer(t *testing.T) {
	t.Run("no providers", func(t *testing.T) {
		err := NewFallbackMailer(zaptest.NewLogger(t)).Send(context.Background(), testEmail)
		if !errors.Is(err, ErrMailerNotConfigured) {
			t.Fatalf("expected ErrMailerNotConfigured, got %v", err)
		}
	})

	t.Run("falls back to second provider", func(t *testing.T) {
		first := &stubMailer{name: "sendgrid", err: errors.New("boom")}
		second := &stubMailer{name: "smtp"}
		if err := NewFallbackMailer(zaptest.NewLogger(t), first, second).Send(context.Background(), testEmail); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.calls != 1 || second.calls != 1 {
			t.Errorf("unexpected calls %d/%d", first.calls, second.calls)
		}
	})

	t.Run("stops at first success", func(t *testing.T) {
		first := &stubMailer{name: "sendgrid"}
		second := &stubMailer{name: "smtp"}
		if err := NewFallbackMailer(zaptest.NewLogger(t), first, second).Send(context.Background(), testEmail); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.calls != 0 {
			t.Error("second provider must not be used")
		}
	})

	t.Run("returns last error", func(t *testing.T) {
		last := errors.New("smtp down")
		err := NewFallbackMailer(zaptest.NewLogger(t),
			&stubMailer{name: "sendgrid", err: errors.New("sendgrid down")},
			&stubMailer{name: "smtp", err: last},
		).Send(context.Background(), testEmail)
		var delivery *EmailDeliveryError
		if !errors.As(err, &delivery) || !errors.Is(err, last) {
			t.Fatalf("expected delivery error wrapping last failure, got %v", err)
		}
	})
}
