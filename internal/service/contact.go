package service

import (
	"PortfolioBackend/internal/model"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"k8s.io/klog/v2"
)

var ErrRelayDisabled = errors.New("contact relay is not configured")

// ContactRelay hands contact form submissions to the external delivery
// endpoint. The payload is forwarded untouched.
type ContactRelay struct {
	url    string
	client *http.Client
}

func NewContactRelay(url string, client *http.Client) *ContactRelay {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &ContactRelay{url: url, client: client}
}

func (r *ContactRelay) Send(ctx context.Context, msg model.ContactMessage) error {
	if r.url == "" {
		return ErrRelayDisabled
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("contact relay: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("contact relay: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("contact relay: post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("contact relay: endpoint returned %s: %s", resp.Status, bytes.TrimSpace(snippet))
	}

	klog.V(1).Infof("contact relay: delivered message (%d bytes)", len(msg.Message))
	return nil
}
