package appcontext

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/parthk/bakery-backend/internal/config"
	"github.com/parthk/bakery-backend/internal/infra/messaging"
	"github.com/parthk/bakery-backend/internal/infra/messaging/rabbitmq"
	"github.com/parthk/bakery-backend/internal/infra/repository/db"
	"github.com/parthk/bakery-backend/internal/service"
)

type ApplicationContext struct {
	Cf             *config.Config
	Logger         *zerolog.Logger
	DbConn         *pgxpool.Pool
	ProductRepo    db.ProductRepository
	OrderRepo      db.OrderRepository
	Publisher      messaging.Publisher
	ProductService service.IProductService
	OrderService   service.IOrderService
}

func NewApplicationContext(cf *config.Config, logger *zerolog.Logger) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf:     cf,
		Logger: logger,
	}

	if err := app.init(); err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) init() error {
	if err := app.setUpDbConn(); err != nil {
		return err
	}
	if err := app.setUpRepositories(); err != nil {
		return err
	}
	if err := app.setUpPublisher(); err != nil {
		return err
	}
	if err := app.setUpServices(); err != nil {
		return err
	}
	return nil
}

func (app *ApplicationContext) setUpDbConn() error {
	app.Logger.Info().Msg("Start setup database connection")

	conn, err := db.Connect(context.Background(), app.Cf.DbSource())
	if err != nil {
		return err
	}

	if err := db.Migrate(app.Cf.MigrationURL, app.Cf.DbSource()); err != nil {
		conn.Close()
		return err
	}

	app.DbConn = conn
	app.Logger.Info().Msg("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpRepositories() error {
	app.Logger.Info().Msg("Start setup repositories")
	app.ProductRepo = db.NewProductRepository(app.DbConn)
	app.OrderRepo = db.NewOrderRepository(app.DbConn)
	app.Logger.Info().Msg("Finish setup repositories")
	return nil
}

func (app *ApplicationContext) setUpPublisher() error {
	app.Logger.Info().Msg("Start setup order queue publisher")
	app.Publisher = rabbitmq.NewPublisher(rabbitmq.Config{
		URL:         app.Cf.MqURL(),
		Queue:       app.Cf.OrderQueue,
		MaxRetries:  config.MqMaxRetries,
		RetryDelay:  config.MqRetryDelay,
		Heartbeat:   config.MqHeartbeat,
		DialTimeout: config.MqDialTimeout,
	}, app.Logger)
	app.Logger.Info().Msg("Finish setup order queue publisher")
	return nil
}

func (app *ApplicationContext) setUpServices() error {
	app.Logger.Info().Msg("Start setup services")
	app.ProductService = service.NewProductService(app.ProductRepo)
	app.OrderService = service.NewOrderService(app.OrderRepo, app.ProductRepo, app.Publisher, app.Logger)
	app.Logger.Info().Msg("Finish setup services")
	return nil
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	app.Logger.Info().Msg("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		if app.DbConn != nil {
			app.Logger.Info().Msg("Closing database connection...")
			app.DbConn.Close()
		}

		app.Logger.Info().Msg("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
