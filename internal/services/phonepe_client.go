package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/example/stabiliq/internal/metrics"
)

const (
	redirectModePost      = "POST"
	instrumentPayPage     = "PAY_PAGE"
	defaultDeclineMessage = "Error while initiating payment request"
	maxGatewayBody        = 1 << 20

	redirectPath = "/payment/status"
	callbackPath = "/payment/callback"
)

var tracer = otel.Tracer("github.com/example/stabiliq/internal/services")

// PhonePeConfig holds merchant credentials for the pay API.
type PhonePeConfig struct {
	HostURL      string
	MerchantID   string
	SaltKey      string
	SaltKeyIndex string
	BaseURL      string
	Timeout      time.Duration
}

// PhonePeClient talks to the PhonePe PG pay endpoint.
type PhonePeClient struct {
	cfg        PhonePeConfig
	httpClient *http.Client
	log        *zap.Logger
}

func NewPhonePeClient(cfg PhonePeConfig, log *zap.Logger) *PhonePeClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	cfg.HostURL = strings.TrimRight(cfg.HostURL, "/")
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &PhonePeClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Named("phonepe"),
	}
}

// PayRequest is one checkout request for a resolved merchant transaction id.
type PayRequest struct {
	MerchantTransactionID string
	Amount                float64
	UserID                string
	Mobile                string
}

// PayResult is the business outcome of a pay call. Accepted is false when the
// gateway answered but did not hand out a checkout page.
type PayResult struct {
	Accepted    bool
	CheckoutURL string
	MerchantID  string
	Code        string
	Message     string
}

type payPayload struct {
	MerchantID            string        `json:"merchantId"`
	MerchantTransactionID string        `json:"merchantTransactionId"`
	Amount                float64       `json:"amount"`
	MerchantUserID        string        `json:"merchantUserId"`
	RedirectURL           string        `json:"redirectUrl"`
	RedirectMode          string        `json:"redirectMode"`
	CallbackURL           string        `json:"callbackUrl"`
	PaymentInstrument     payInstrument `json:"paymentInstrument"`
	MobileNumber          string        `json:"mobileNumber"`
}

type payInstrument struct {
	Type string `json:"type"`
}

// PayResponse mirrors the gateway answer. Every level may be missing.
type PayResponse struct {
	Success bool             `json:"success"`
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Data    *PayResponseData `json:"data"`
}

type PayResponseData struct {
	MerchantID            string              `json:"merchantId"`
	MerchantTransactionID string              `json:"merchantTransactionId"`
	InstrumentResponse    *InstrumentResponse `json:"instrumentResponse"`
}

type InstrumentResponse struct {
	Type         string        `json:"type"`
	RedirectInfo *RedirectInfo `json:"redirectInfo"`
}

type RedirectInfo struct {
	URL    string `json:"url"`
	Method string `json:"method"`
}

// CheckoutURL returns data.instrumentResponse.redirectInfo.url if present.
func (r *PayResponse) CheckoutURL() (string, bool) {
	if r == nil || r.Data == nil || r.Data.InstrumentResponse == nil || r.Data.InstrumentResponse.RedirectInfo == nil {
		return "", false
	}
	url := strings.TrimSpace(r.Data.InstrumentResponse.RedirectInfo.URL)
	return url, url != ""
}

func (c *PhonePeClient) buildPayload(req PayRequest) payPayload {
	return payPayload{
		MerchantID:            c.cfg.MerchantID,
		MerchantTransactionID: req.MerchantTransactionID,
		Amount:                req.Amount,
		MerchantUserID:        req.UserID,
		RedirectURL:           c.cfg.BaseURL + redirectPath,
		RedirectMode:          redirectModePost,
		CallbackURL:           c.cfg.BaseURL + callbackPath,
		PaymentInstrument:     payInstrument{Type: instrumentPayPage},
		MobileNumber:          req.Mobile,
	}
}

// Pay requests a checkout page. Transport failures, timeouts, 429 and 5xx
// answers come back as *GatewayError; everything else is a PayResult.
func (c *PhonePeClient) Pay(ctx context.Context, req PayRequest) (*PayResult, error) {
	ctx, span := tracer.Start(ctx, "phonepe.Pay")
	defer span.End()
	span.SetAttributes(attribute.String("payment.merchant_transaction_id", req.MerchantTransactionID))

	encoded, err := EncodePayload(c.buildPayload(req))
	if err != nil {
		return nil, fmt.Errorf("encode pay payload: %w", err)
	}
	body, err := json.Marshal(map[string]string{"request": encoded})
	if err != nil {
		return nil, fmt.Errorf("encode pay body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.HostURL+PayEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build pay request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-VERIFY", CalculateChecksum(encoded, PayEndpoint, c.cfg.SaltKey, c.cfg.SaltKeyIndex))

	started := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		gwErr := &GatewayError{Ambiguous: ambiguousTransport(err), Err: err}
		c.observe("transport_error", started)
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport error")
		return nil, gwErr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxGatewayBody))
	if err != nil {
		c.observe("transport_error", started)
		span.RecordError(err)
		return nil, &GatewayError{StatusCode: resp.StatusCode, Ambiguous: true, Err: err}
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
		c.observe("http_error", started)
		span.SetStatus(codes.Error, resp.Status)
		return nil, &GatewayError{
			StatusCode: resp.StatusCode,
			Ambiguous:  resp.StatusCode >= http.StatusInternalServerError,
			Err:        fmt.Errorf("phonepe answered %s", resp.Status),
		}
	}

	var parsed PayResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			c.observe("http_error", started)
			return nil, &GatewayError{StatusCode: resp.StatusCode, Err: fmt.Errorf("unreadable error body: %w", err)}
		}
		c.log.Warn("unreadable pay response",
			zap.String("merchant_transaction_id", req.MerchantTransactionID),
			zap.Int("status", resp.StatusCode),
			zap.Error(err),
		)
		c.observe("declined", started)
		return &PayResult{Message: defaultDeclineMessage}, nil
	}

	checkoutURL, ok := parsed.CheckoutURL()
	if !ok || resp.StatusCode >= http.StatusMultipleChoices {
		c.observe("declined", started)
		msg := strings.TrimSpace(parsed.Message)
		if msg == "" {
			msg = defaultDeclineMessage
		}
		return &PayResult{Code: parsed.Code, Message: msg}, nil
	}

	c.observe("accepted", started)
	merchantID := c.cfg.MerchantID
	if parsed.Data.MerchantID != "" {
		merchantID = parsed.Data.MerchantID
	}
	return &PayResult{
		Accepted:    true,
		CheckoutURL: checkoutURL,
		MerchantID:  merchantID,
		Code:        parsed.Code,
		Message:     parsed.Message,
	}, nil
}

func (c *PhonePeClient) observe(outcome string, started time.Time) {
	metrics.ObserveGatewayRequest(outcome, time.Since(started).Seconds())
}

// ambiguousTransport reports whether the request may have reached PhonePe
// before err cut it off.
func ambiguousTransport(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
