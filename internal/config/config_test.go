package config

import (
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("PHONEPE_PG_HOST_URL", "https://api-preprod.phonepe.com/apis/pg-sandbox")
	t.Setenv("PST_PHONEPE_MERCHANT_ID", "PGTESTPAYUAT")
	t.Setenv("PST_PHONEPE_SALT_KEY", "099eb0cd-02cf-4e2a-8aca-3e6c6aff0399")
	t.Setenv("PST_SALT_KEY_INDEX", "1")
	t.Setenv("BASE_URL", "https://app.stabiliq.in")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.AppPort != "8000" {
		t.Errorf("expected default port 8000, got %q", cfg.AppPort)
	}
	if cfg.TokenTTL() != 30*24*time.Hour {
		t.Errorf("expected 30 day token ttl, got %v", cfg.TokenTTL())
	}
	if cfg.OTPTTL() != 10*time.Minute {
		t.Errorf("expected 10 minute otp ttl, got %v", cfg.OTPTTL())
	}
	if cfg.PhonePe.Timeout != 15*time.Second {
		t.Errorf("expected 15s gateway timeout, got %v", cfg.PhonePe.Timeout)
	}
	if cfg.Payments.IDMaxAttempts != 10 {
		t.Errorf("expected 10 id attempts, got %d", cfg.Payments.IDMaxAttempts)
	}
	if cfg.Payments.ListDefaultLimit != 50 || cfg.Payments.ListMaxLimit != 1000 {
		t.Errorf("unexpected list limits %d/%d", cfg.Payments.ListDefaultLimit, cfg.Payments.ListMaxLimit)
	}
	if len(cfg.Kafka.Brokers) != 0 {
		t.Errorf("expected kafka disabled by default, got %v", cfg.Kafka.Brokers)
	}
}

func TestLoadMissingGatewaySettings(t *testing.T) {
	setRequired(t)
	t.Setenv("PST_PHONEPE_SALT_KEY", "   ")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for blank salt key")
	}
	if !strings.Contains(err.Error(), "PST_PHONEPE_SALT_KEY") {
		t.Errorf("error should name the salt key, got %v", err)
	}
}

func TestLoadRejectsRelativeBaseURL(t *testing.T) {
	setRequired(t)
	t.Setenv("BASE_URL", "/payment")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "BASE_URL") {
		t.Fatalf("expected BASE_URL error, got %v", err)
	}
}

func TestLoadKafkaBrokers(t *testing.T) {
	setRequired(t)
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "kafka-2:9092" {
		t.Errorf("unexpected brokers %v", cfg.Kafka.Brokers)
	}
}
