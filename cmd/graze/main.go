package main

import (
	"context"
	"log/slog"
	"os"

	"graze/config"
	"graze/internal/delivery"
	"graze/internal/delivery/worker"
	"graze/internal/delivery/worker/handler"
	"graze/internal/domain/quality"
	"graze/internal/domain/repository"
	"graze/internal/domain/service"
	logs "graze/internal/infra/log"
	"graze/internal/infra/persistence/postgres"
	"graze/internal/infra/pubsub"
	"graze/internal/infra/push"
	"graze/internal/infra/scheduler"
	"graze/internal/usecase"
	"graze/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			registerJobs,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		scheduler.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewOfferRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewPushEndpointRepository,
			postgres.NewDedupRepository,
			postgres.NewVendorMetricsRepository,
			postgres.NewOrderStatsRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newClock,
			push.NewPushSender,
			pubsub.NewEventPublisher,
		),
	)
}

func newClock() service.Clock {
	return service.SystemClock{}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newDispatchUsecase,
			impl.NewActivationService,
			newQualityUsecase,
		),
	)
}

// newDispatchUsecase assembles the dispatcher from configuration
func newDispatchUsecase(
	subscriptionRepo repository.SubscriptionRepository,
	endpointRepo repository.PushEndpointRepository,
	dedupRepo repository.DedupRepository,
	sender service.PushSender,
	clock service.Clock,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.DispatchUsecase {
	return impl.NewDispatchService(
		subscriptionRepo,
		endpointRepo,
		dedupRepo,
		sender,
		clock,
		logger,
		impl.DispatchConfig{
			AntispamWindow:  cfg.AntispamWindow(),
			SendTimeout:     cfg.Notify.SendTimeout,
			Workers:         cfg.Notify.DispatchWorkers,
			OfferURLBase:    cfg.Notify.OfferURLBase,
			DefaultRadiusKm: cfg.Notify.DefaultRadiusKm,
		},
	)
}

// newQualityUsecase assembles the scoring job from configuration
func newQualityUsecase(
	metricsRepo repository.VendorMetricsRepository,
	statsRepo repository.OrderStatsRepository,
	clock service.Clock,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.QualityUsecase {
	return impl.NewQualityService(
		metricsRepo,
		statsRepo,
		clock,
		logger,
		quality.Thresholds{
			MinOrders:         cfg.Quality.MinOrders,
			MinQualityScore:   cfg.Quality.MinQualityScore,
			MinCompletionRate: cfg.Quality.MinCompletionRate,
			MinAvgRating:      cfg.Quality.MinAvgRating,
		},
		cfg.Quality.Workers,
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewJobsHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// registerJobs wires the background jobs onto the scheduler before it starts
func registerJobs(
	s *scheduler.Scheduler,
	cfg *config.Config,
	activation usecase.ActivationUsecase,
	qualityUC usecase.QualityUsecase,
) error {
	s.RegisterInterval("offer-activation", cfg.Scheduler.ActivationInterval, func(ctx context.Context) error {
		_, err := activation.RunTick(ctx)

		return err
	})

	return s.RegisterDailyAt("vendor-quality", cfg.Quality.RunAt, cfg.Quality.Timezone, func(ctx context.Context) error {
		_, err := qualityUC.RunAll(ctx)

		return err
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
