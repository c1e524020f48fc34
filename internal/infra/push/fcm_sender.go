// Package push implements the outbound notification transports.
package push

import (
	"context"
	"log/slog"
	"strconv"

	"graze/internal/domain/entity"
	"graze/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type fcmSender struct {
	client *messaging.Client
	logger *slog.Logger
}

// NewFCMSender creates a PushSender backed by Firebase Cloud Messaging. The
// endpoint blob is the device registration token.
func NewFCMSender(ctx context.Context, credentialsPath string, logger *slog.Logger) (service.PushSender, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmSender{
		client: client,
		logger: logger,
	}, nil
}

// Send delivers one payload to one device token.
func (s *fcmSender) Send(ctx context.Context, endpoint *entity.PushEndpoint, payload *service.PushPayload) error {
	message := &messaging.Message{
		Token: endpoint.Blob,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: map[string]string{
			"type":       payload.Data.Type,
			"offerId":    strconv.FormatInt(payload.Data.OfferID, 10),
			"businessId": strconv.FormatInt(payload.Data.BusinessID, 10),
			"url":        payload.Data.URL,
		},
	}

	_, err := s.client.Send(ctx, message)
	if err != nil {
		// Unregistered and malformed tokens are terminal. The caller disables
		// the endpoint instead of retrying.
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return errors.Wrap(service.ErrEndpointGone, err.Error())
		}

		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}
