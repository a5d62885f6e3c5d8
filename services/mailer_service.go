package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const web3FormsEndpoint = "https://api.web3forms.com/submit"

// Message is one outbound email.
type Message struct {
	Recipient string
	Subject   string
	Body      string
	Kind      string
}

// Result is the explicit outcome of a delivery attempt. Callers log it
// and move on; a failed result never blocks their success path.
type Result struct {
	Delivered bool
	Err       error
}

// Notifier submits emails best-effort. The core handlers depend on this
// interface, not on the Web3Forms client directly.
type Notifier interface {
	Send(ctx context.Context, msg Message) Result
}

// Web3FormsConfig holds the Web3Forms credentials and sender identity.
type Web3FormsConfig struct {
	AccessKey string
	FromName  string
	Endpoint  string
}

// Web3FormsMailer sends transactional email through the Web3Forms API.
type Web3FormsMailer struct {
	config     Web3FormsConfig
	httpClient *http.Client
}

func NewWeb3FormsMailer(config Web3FormsConfig) *Web3FormsMailer {
	if config.Endpoint == "" {
		config.Endpoint = web3FormsEndpoint
	}
	if config.FromName == "" {
		config.FromName = "Restaurant"
	}
	return &Web3FormsMailer{
		config:     config,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type web3FormsRequest struct {
	AccessKey string `json:"access_key"`
	Subject   string `json:"subject"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Message   string `json:"message"`
}

type web3FormsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (m *Web3FormsMailer) Send(ctx context.Context, msg Message) Result {
	if m.config.AccessKey == "" {
		return Result{Err: errors.New("web3forms access key not configured")}
	}
	if msg.Recipient == "" {
		return Result{Err: errors.New("no recipient address")}
	}

	payload, err := json.Marshal(web3FormsRequest{
		AccessKey: m.config.AccessKey,
		Subject:   msg.Subject,
		Email:     msg.Recipient,
		Name:      m.config.FromName,
		Message:   msg.Body,
	})
	if err != nil {
		return Result{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return Result{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return Result{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Err: err}
	}

	var apiResp web3FormsResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return Result{Err: fmt.Errorf("unexpected response (status %d)", resp.StatusCode)}
	}
	if !apiResp.Success {
		return Result{Err: fmt.Errorf("provider rejected email: %s", apiResp.Message)}
	}

	return Result{Delivered: true}
}
