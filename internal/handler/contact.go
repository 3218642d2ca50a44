package handler

import (
	"PortfolioBackend/internal/model"
	"PortfolioBackend/internal/service"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"k8s.io/klog/v2"
)

// ContactSender delivers a contact form submission.
type ContactSender interface {
	Send(ctx context.Context, msg model.ContactMessage) error
}

func SubmitContact(sender ContactSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg model.ContactMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			writeError(w, http.StatusBadRequest, "Error decoding JSON")
			return
		}

		if err := sender.Send(r.Context(), msg); err != nil {
			if errors.Is(err, service.ErrRelayDisabled) {
				writeError(w, http.StatusServiceUnavailable, err.Error())
				return
			}
			klog.Errorf("contact relay failed: %v", err)
			writeError(w, http.StatusBadGateway, "Failed to deliver message")
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}
}
