package push

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"graze/config"
	"graze/internal/domain/entity"
	"graze/internal/domain/service"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/pkg/errors"
)

type webPushSender struct {
	options webpush.Options
	logger  *slog.Logger
}

// NewWebPushSender creates a PushSender backed by the Web Push protocol with
// VAPID authentication. The endpoint blob is the browser subscription JSON
// (endpoint URL plus the p256dh and auth keys).
func NewWebPushSender(cfg *config.WebPushConfig, logger *slog.Logger) (service.PushSender, error) {
	if cfg.PublicKey == "" || cfg.PrivateKey == "" {
		return nil, errors.New("webpush VAPID key pair is required")
	}
	if cfg.Subject == "" {
		return nil, errors.New("webpush subject is required")
	}

	return &webPushSender{
		options: webpush.Options{
			Subscriber:      cfg.Subject,
			VAPIDPublicKey:  cfg.PublicKey,
			VAPIDPrivateKey: cfg.PrivateKey,
		},
		logger: logger,
	}, nil
}

// Send delivers one payload to one browser subscription.
func (s *webPushSender) Send(ctx context.Context, endpoint *entity.PushEndpoint, payload *service.PushPayload) error {
	var subscription webpush.Subscription
	if err := json.Unmarshal([]byte(endpoint.Blob), &subscription); err != nil {
		// An unparseable subscription can never be delivered to.
		return errors.Wrap(service.ErrEndpointGone, err.Error())
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	options := s.options
	resp, err := webpush.SendNotificationWithContext(ctx, body, &subscription, &options)
	if err != nil {
		return errors.Wrap(err, "failed to send web push")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		// The push service reports the subscription expired or was revoked.
		return errors.Wrapf(service.ErrEndpointGone, "push service returned %d", resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return errors.Errorf("push service returned non-success status: %d", resp.StatusCode)
	}

	return nil
}
