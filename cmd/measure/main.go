package main

import (
	"context"
	"log/slog"
	"os"

	"measure/config"
	"measure/internal/delivery"
	"measure/internal/delivery/http"
	"measure/internal/delivery/http/middleware"
	"measure/internal/delivery/http/router/handler"
	"measure/internal/domain/repository"
	"measure/internal/domain/service"
	"measure/internal/infra/canvas"
	"measure/internal/infra/geodesy"
	logs "measure/internal/infra/log"
	"measure/internal/infra/overlay"
	"measure/internal/infra/persistence/memory"
	"measure/internal/infra/persistence/postgres"
	"measure/internal/infra/projection"
	"measure/internal/infra/status"
	"measure/internal/usecase/impl"

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
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		canvas.New,
		overlay.NewRenderer,
		status.NewNotifier,
	)
}

type collectionRepoParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// newCollectionRepository selects the collection store. PostgreSQL is
// optional; without it collections live in memory for the process lifetime.
func newCollectionRepository(params collectionRepoParams) (repository.CollectionRepository, error) {
	if params.Config.Postgres == nil {
		return memory.NewCollectionRepository(), nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return nil, err
	}

	return postgres.NewCollectionRepository(db)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newCollectionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			projection.NewTransformer,
			geodesy.NewCalculator,
			newCanvasState,
			newOverlayRenderer,
			newStatusNotifier,
		),
	)
}

// newCanvasState exposes the canvas to the domain layer behind its interface.
func newCanvasState(canvasState *canvas.Canvas) service.CanvasState {
	return canvasState
}

// newOverlayRenderer exposes the overlay renderer behind its domain interface.
func newOverlayRenderer(renderer *overlay.Renderer) service.OverlayRenderer {
	return renderer
}

// newStatusNotifier exposes the status notifier behind its domain interface.
func newStatusNotifier(notifier *status.Notifier) service.StatusNotifier {
	return notifier
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMeasureService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMeasureHandler,
			handler.NewCanvasHandler,
			handler.NewCollectionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
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
