package smsassistent

import (
	"context"
	"encoding/xml"
	"net/http"
	"strings"
	"time"
)

type Message struct {
	Phone  string
	Text   string
	Sender string
}

// BatchDefaults apply to every message in a batch unless a message
// overrides them. The service resolves the fallback on its side.
type BatchDefaults struct {
	Text   string
	Sender string
}

type BatchOptions struct {
	Defaults BatchDefaults
	// SendAt schedules the whole batch; the zero value sends immediately.
	SendAt time.Time
}

// SendMessages submits a batch as one XML package. The return value is the
// transport's success indicator only; unlike the plain endpoints the XML
// endpoint does not report per-message codes.
func (c *Client) SendMessages(ctx context.Context, messages []Message, opts *BatchOptions) (bool, error) {
	if err := c.checkAuthorizationData(); err != nil {
		return false, err
	}

	if opts == nil {
		opts = &BatchOptions{}
	}

	headers := map[string]string{"Content-Type": "application/xml"}
	if c.cfg.Token != "" {
		headers[authTokenHeader] = c.cfg.Token
	}

	body := c.buildPackage(messages, opts)

	resp, err := c.client.Post(ctx, c.cfg.BaseURL+SendXMLEndpoint, strings.NewReader(body), headers)
	if err != nil {
		return false, err
	}

	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}

// buildPackage assembles the XML document the service expects. Element and
// attribute order is fixed: package(login, date_send?, password?) >
// message > default, then one msg per input message. With token auth the
// password attribute is omitted; the token travels as a header instead.
func (c *Client) buildPackage(messages []Message, opts *BatchOptions) string {
	var b strings.Builder

	b.WriteString(`<?xml version="1.0" encoding="utf-8" ?>`)
	b.WriteString(`<package login="`)
	writeEscaped(&b, c.cfg.Username)
	b.WriteByte('"')

	if !opts.SendAt.IsZero() {
		b.WriteString(` date_send="`)
		b.WriteString(opts.SendAt.Format(scheduleLayout))
		b.WriteByte('"')
	}

	if c.cfg.Token == "" {
		b.WriteString(` password="`)
		writeEscaped(&b, c.cfg.Password)
		b.WriteByte('"')
	}

	b.WriteString(`><message>`)

	sender := opts.Defaults.Sender
	if sender == "" {
		sender = c.cfg.Sender
	}

	b.WriteString(`<default sender="`)
	writeEscaped(&b, sender)
	b.WriteString(`">`)
	writeEscaped(&b, opts.Defaults.Text)
	b.WriteString(`</default>`)

	for _, msg := range messages {
		b.WriteString(`<msg recipient="`)
		writeEscaped(&b, msg.Phone)
		b.WriteByte('"')

		// No fallback here: the service applies <default> itself.
		if msg.Sender != "" {
			b.WriteString(` sender="`)
			writeEscaped(&b, msg.Sender)
			b.WriteByte('"')
		}

		b.WriteByte('>')
		writeEscaped(&b, msg.Text)
		b.WriteString(`</msg>`)
	}

	b.WriteString(`</message></package>`)

	return b.String()
}

func writeEscaped(b *strings.Builder, s string) {
	// strings.Builder never returns a write error.
	_ = xml.EscapeText(b, []byte(s))
}
