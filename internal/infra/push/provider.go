package push

import (
	"context"
	"log/slog"

	"graze/config"
	"graze/internal/domain/constants"
	"graze/internal/domain/entity"
	"graze/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopSender is used when no push transport is configured, so the dispatch
// pipeline can run end to end in development without credentials.
type noopSender struct {
	logger *slog.Logger
}

func (s *noopSender) Send(ctx context.Context, endpoint *entity.PushEndpoint, payload *service.PushPayload) error {
	s.logger.Debug("[NoopPush] Push transport disabled, skipping",
		slog.Int64("endpoint_id", endpoint.ID),
		slog.Int64("offer_id", payload.Data.OfferID),
	)

	return nil
}

// SenderParams holds dependencies for PushSender, injected by Fx
type SenderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushSender creates a PushSender based on configuration
func NewPushSender(params SenderParams) (service.PushSender, error) {
	cfg := params.Config.Push
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Push transport not configured, using no-op sender")

		return &noopSender{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PushProviderFCM:
		if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
			return nil, errors.New("firebase credentials are required for fcm provider")
		}
		logger.Info("Using FCM push sender",
			slog.String("project_id", cfg.Firebase.ProjectID),
		)

		return NewFCMSender(params.Ctx, cfg.Firebase.CredentialsPath, logger)

	case constants.PushProviderWebPush:
		if cfg.WebPush == nil {
			return nil, errors.New("webpush configuration is required for webpush provider")
		}
		logger.Info("Using Web Push sender",
			slog.String("subject", cfg.WebPush.Subject),
		)

		return NewWebPushSender(cfg.WebPush, logger)

	default:
		return nil, errors.Errorf("unknown push provider: %s", cfg.Provider)
	}
}

// Module provides the push transport FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPushSender),
)
