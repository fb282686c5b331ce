package vectorsearch

import (
	"go.uber.org/fx"

	"github.com/taskory/std/v1/logger"
	"github.com/taskory/std/v1/metrics"
	"github.com/taskory/std/v1/naming"
	"github.com/taskory/std/v1/postgres"
	"github.com/taskory/std/v1/tracer"
)

// FXModule is an fx module that provides the vector search engine.
//
// It expects a Config, a *Registry, and the postgres module to be available
// in the container; logger, metrics, and tracer are optional collaborators. The
// module provides both *Engine and the Service interface.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    postgres.FXModule,
//	    vectorsearch.FXModule,
//	    fx.Provide(
//	        func() vectorsearch.Config {
//	            return vectorsearch.DefaultConfig().WithTable("documents")
//	        },
//	        func() *vectorsearch.Registry {
//	            return vectorsearch.NewRegistry([]vectorsearch.VectorFieldConfig{
//	                {FieldName: "embedding", Dimension: 1536, Metric: vectorsearch.MetricCosine},
//	            })
//	        },
//	    ),
//	)
var FXModule = fx.Module("vectorsearch",
	fx.Provide(
		naming.NewTransformer,
		NewEngineWithDI,
		fx.Annotate(
			ProvideService,
			fx.As(new(Service)),
		),
	),
)

// ProvideService exposes *Engine as the Service interface.
func ProvideService(e *Engine) Service {
	return e
}

// EngineParams groups the dependencies needed to construct the engine via
// dependency injection. Logger, metrics, and tracer are optional: the engine
// works without them and simply skips debug output and instrumentation.
type EngineParams struct {
	fx.In

	Config   Config
	Registry *Registry
	Store    postgres.Client
	Namer    *naming.Transformer

	Logger  *logger.Logger    `optional:"true"`
	Metrics metrics.Collector `optional:"true"`
	Tracer  *tracer.Tracer    `optional:"true"`
}

// NewEngineWithDI creates the search engine from injected dependencies.
func NewEngineWithDI(params EngineParams) *Engine {
	var opts []Option
	if params.Logger != nil {
		opts = append(opts, WithLogger(params.Logger))
	}
	if params.Metrics != nil {
		opts = append(opts, WithMetrics(params.Metrics))
	}
	if params.Tracer != nil {
		opts = append(opts, WithTracer(params.Tracer))
	}
	return NewEngine(params.Registry, params.Store, params.Namer, params.Config, opts...)
}
