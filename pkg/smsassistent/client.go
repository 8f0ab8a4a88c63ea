// Package smsassistent is a client for the sms-assistent.by SMS API.
package smsassistent

import (
	"context"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/smsassistent/client-go/pkg/httpclient"
)

const (
	BalanceEndpoint = "credits/plain"
	SendSMSEndpoint = "send_sms/plain"
	SendXMLEndpoint = "xml"
)

// authTokenHeader carries the API token. When a token is configured the
// password is never sent, neither as a query field nor as an XML attribute.
const authTokenHeader = "requestAuthToken"

// scheduleLayout renders scheduled times as YYYYMMDDHHmm, in the caller's
// local time, no timezone conversion.
const scheduleLayout = "200601021504"

type Client struct {
	cfg    Config
	client httpclient.HTTPClient
}

func NewClient(cfg Config, client httpclient.HTTPClient) (*Client, error) {
	if client == nil {
		return nil, ErrTransportRequired
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	c := &Client{cfg: cfg, client: client}
	c.SetBaseURL(c.cfg.BaseURL)

	return c, nil
}

func (c *Client) SetUsername(username string) *Client {
	c.cfg.Username = username
	return c
}

func (c *Client) SetToken(token string) *Client {
	c.cfg.Token = token
	return c
}

func (c *Client) SetPassword(password string) *Client {
	c.cfg.Password = password
	return c
}

// SetSender sets the default sender used when a message does not name one.
func (c *Client) SetSender(sender string) *Client {
	c.cfg.Sender = sender
	return c
}

// SetBaseURL normalizes the endpoint base so it always ends with "/".
func (c *Client) SetBaseURL(baseURL string) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	c.cfg.BaseURL = baseURL

	return c
}

// checkAuthorizationData runs before every network call.
func (c *Client) checkAuthorizationData() error {
	if c.cfg.Username == "" {
		return ErrMissingUsername
	}

	if c.cfg.Token == "" && c.cfg.Password == "" {
		return ErrMissingCredentials
	}

	return nil
}

// buildAuthorizationData merges the credentials into the outgoing request.
// The token takes precedence: it travels as a header and the password is
// omitted from the payload entirely.
func (c *Client) buildAuthorizationData(payload url.Values, headers map[string]string) {
	payload.Set("user", c.cfg.Username)

	if c.cfg.Token != "" {
		headers[authTokenHeader] = c.cfg.Token
		return
	}

	payload.Set("password", c.cfg.Password)
}

// Balance returns the credits available on the account.
func (c *Client) Balance(ctx context.Context) (float64, error) {
	if err := c.checkAuthorizationData(); err != nil {
		return 0, err
	}

	payload := url.Values{}
	headers := map[string]string{}
	c.buildAuthorizationData(payload, headers)

	body, err := c.getPlain(ctx, BalanceEndpoint, payload, headers)
	if err != nil {
		return 0, err
	}

	balance, err := strconv.ParseFloat(strings.TrimSpace(body), 64)
	if err != nil {
		return 0, &ParseError{Body: body, Cause: err}
	}

	if balance < 0 {
		return 0, MapServiceError(int64(balance))
	}

	return balance, nil
}

type SendOptions struct {
	// Sender overrides the configured default sender.
	Sender string
	// SendAt schedules delivery; the zero value sends immediately.
	SendAt time.Time
}

// SendMessage submits a single message and returns the identifier assigned
// by the service. The result is a message ID, not a boolean.
func (c *Client) SendMessage(ctx context.Context, phone, text string, opts *SendOptions) (int64, error) {
	if err := c.checkAuthorizationData(); err != nil {
		return 0, err
	}

	if opts == nil {
		opts = &SendOptions{}
	}

	sender := opts.Sender
	if sender == "" {
		sender = c.cfg.Sender
	}

	payload := url.Values{}
	payload.Set("recipient", phone)
	payload.Set("message", text)
	payload.Set("sender", sender)
	if !opts.SendAt.IsZero() {
		payload.Set("date_send", opts.SendAt.Format(scheduleLayout))
	}

	headers := map[string]string{}
	c.buildAuthorizationData(payload, headers)

	body, err := c.getPlain(ctx, SendSMSEndpoint, payload, headers)
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(strings.TrimSpace(body), 10, 64)
	if err != nil {
		return 0, &ParseError{Body: body, Cause: err}
	}

	if id < 0 {
		return 0, MapServiceError(id)
	}

	return id, nil
}

// getPlain issues a GET against a plain-text endpoint and returns the body
// as-is; the service reports failures as negative codes inside the body.
func (c *Client) getPlain(ctx context.Context, endpoint string, payload url.Values, headers map[string]string) (string, error) {
	requestURL := c.cfg.BaseURL + endpoint
	if len(payload) > 0 {
		requestURL += "?" + payload.Encode()
	}

	resp, err := c.client.Get(ctx, requestURL, headers)
	if err != nil {
		return "", err
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
