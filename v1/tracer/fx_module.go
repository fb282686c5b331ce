package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/taskory/std/v1/logger"
)

// FXModule is an fx module that provides the tracer client and registers a
// shutdown hook so pending spans are flushed on application stop.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    tracer.FXModule,
//	    fx.Provide(func() tracer.Config {
//	        return tracer.DefaultConfig()
//	    }),
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClientWithDI,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// TracerParams groups the dependencies needed to construct the tracer via
// dependency injection.
type TracerParams struct {
	fx.In

	Config Config
	Logger *logger.Logger `optional:"true"`
}

// NewClientWithDI creates the tracer client from injected dependencies.
func NewClientWithDI(params TracerParams) (*Tracer, error) {
	return NewClient(params.Config, params.Logger)
}

// TracerLifeCycleParams groups the dependencies needed for tracer lifecycle
// management.
type TracerLifeCycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Tracer    *Tracer
	Logger    *logger.Logger `optional:"true"`
}

// RegisterTracerLifecycle registers the shutdown hook that flushes spans and
// releases exporter resources when the application stops.
func RegisterTracerLifecycle(params TracerLifeCycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if params.Logger != nil {
				params.Logger.Info("Shutting down tracer", nil)
			}
			return params.Tracer.Shutdown(ctx)
		},
	})
}
