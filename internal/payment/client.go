package payment

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// HostedClient talks to the hosted-checkout endpoint of the payment
// collaborator. It only creates sessions; settlement webhooks are handled
// by the collaborator's own dashboard configuration.
type HostedClient struct {
	url    string
	apiKey string
	client *resty.Client
}

func NewHostedClient(url, apiKey string) *HostedClient {
	return &HostedClient{
		url:    url,
		apiKey: apiKey,
		client: resty.New().SetTimeout(30 * time.Second),
	}
}

type sessionBody struct {
	Mode               string     `json:"mode"`
	PaymentMethodTypes []string   `json:"payment_method_types"`
	LineItems          []LineItem `json:"line_items"`
	CustomerEmail      string     `json:"customer_email"`
	SuccessURL         string     `json:"success_url"`
	CancelURL          string     `json:"cancel_url"`
}

func (c *HostedClient) CreateSession(req SessionRequest) (Session, error) {
	if err := req.validate(); err != nil {
		return Session{}, err
	}
	if c.url == "" || c.apiKey == "" {
		return Session{}, fmt.Errorf("payment gateway is not configured")
	}

	body := sessionBody{
		Mode:               "payment",
		PaymentMethodTypes: []string{"card"},
		LineItems:          req.Items,
		CustomerEmail:      req.CustomerEmail,
		SuccessURL:         req.SuccessURL,
		CancelURL:          req.CancelURL,
	}

	resp, err := c.client.R().
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(body).
		Post(c.url)
	if err != nil {
		return Session{}, err
	}
	if resp.IsError() {
		return Session{}, fmt.Errorf("payment session request failed with status %d: %s", resp.StatusCode(), resp.Body())
	}

	var session Session
	if err := json.Unmarshal(resp.Body(), &session); err != nil {
		return Session{}, fmt.Errorf("failed to parse session response: %w", err)
	}
	if session.URL == "" {
		return Session{}, fmt.Errorf("session response is missing a redirect url")
	}
	return session, nil
}
