// Package postgres provides a PostgreSQL client with connection monitoring,
// automatic reconnection, and a raw parameterized query primitive.
//
// The client is built on GORM with the pgx-backed driver. Its main consumer
// in this repository is the vector search engine (v1/vectorsearch), which
// needs exactly one capability: execute a parameterized SQL string and get
// the result set back as row mappings.
//
// Basic usage:
//
//	db, err := postgres.NewPostgres(postgres.Config{
//		Connection: postgres.Connection{
//			Host:   "localhost",
//			Port:   "5432",
//			User:   "postgres",
//			DbName: "app",
//		},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer db.GracefulShutdown()
//
//	rows, err := db.RawQuery(ctx,
//		"SELECT id, name FROM users WHERE age > $1", 18)
//
// FX module integration:
//
//	app := fx.New(
//		postgres.FXModule,
//		fx.Provide(func() postgres.Config { return loadConfig() }),
//	)
//
// The fx module starts connection monitoring and reconnection goroutines on
// application start and closes the pool on stop.
//
// Error handling: query methods return GORM/driver errors unmodified, so
// callers can use errors.Is with gorm sentinel errors or inspect the
// underlying pgx error.
package postgres
