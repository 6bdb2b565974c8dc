package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lnticket/api/internal/config"
	"lnticket/api/internal/delivery"
	"lnticket/api/internal/infra/nats"
	"lnticket/api/internal/logger"
	"lnticket/api/internal/service"

	"github.com/gin-gonic/gin"
	cors "github.com/rs/cors/wrapper/gin"
	"gorm.io/gorm"
)

type App struct {
	Config    *config.Config
	Db        *gorm.DB
	NatsInfra *nats.NatsInfra
	Log       logger.Logger
}

func (app *App) Start() {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(cors.Default())

	services := service.NewServices(app.NatsInfra.Ns, app.Db, app.Log, app.Config)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handle := app.Autostart(ctx, services)

	{
		h := delivery.InitHandler(services, app.Db, app.Config, app.NatsInfra, app.Log)

		h.InitAPI(r)
	}

	eChan := make(chan error)
	interrupt := make(chan os.Signal, 1)

	fmt.Println("lnticket web is starting")

	go func() {
		err := r.Run(app.Config.Api.Ipv4)
		if err != nil {
			eChan <- fmt.Errorf("listen and serve: %w", err)
		}
	}()

	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-eChan:
		app.Log.TemplHTTPError("app fatal error", app.Config.Api.Ipv4, err)
	case <-interrupt:
	}

	// Stop blocks until the listener loop drains
	if handle != nil {
		handle.Stop()
	}
}

// start autostart services
func (app *App) Autostart(ctx context.Context, services *service.Services) *service.ListenerHandle {
	fmt.Println("Autostart: start payments listener")

	handle, err := services.Listener.Start(ctx)
	if err != nil {
		panic("can't start payments listener: " + err.Error())
	}

	return handle
}
