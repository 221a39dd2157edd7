// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mailer delivers visitor messages to a configured webhook.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// ErrCooldown is returned when a message is sent before the cooldown
// window has elapsed.
var ErrCooldown = errors.New("mailer: please wait a moment before sending another message")

// ErrEmptyMessage rejects blank payloads before they hit the wire.
var ErrEmptyMessage = errors.New("mailer: message is empty")

// =============================================================================
// MAILER
// =============================================================================

// Mailer posts visitor messages to a webhook, enforcing a cooldown so the
// send command can't be spammed. The cooldown is in-memory only and is
// not persisted across restarts.
type Mailer struct {
	url     string
	client  *http.Client
	limiter *rate.Limiter
}

// New creates a mailer for the given webhook URL. cooldown is the minimum
// gap between sends; zero disables the guard.
func New(url string, cooldown time.Duration) *Mailer {
	limit := rate.Inf
	if cooldown > 0 {
		limit = rate.Every(cooldown)
	}
	return &Mailer{
		url:     url,
		client:  &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(limit, 1),
	}
}

// payload is the webhook wire format.
type payload struct {
	From    string    `json:"from"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sent_at"`
}

// Send posts one message. It returns ErrCooldown when called inside the
// cooldown window and does not retry failures; the caller reissues if
// desired.
func (m *Mailer) Send(ctx context.Context, from, message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrEmptyMessage
	}
	if !m.limiter.Allow() {
		return ErrCooldown
	}

	body, err := json.Marshal(payload{From: from, Message: message, SentAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("mailer: encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("mailer: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("mailer: deliver message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("mailer: webhook returned %s", resp.Status)
	}
	return nil
}
