// launching the server, menu registration, download sink, kafka
package appServer

import (
	"context"
	"crypto/tls"
	"log"

	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/webext-tools/png-saver/config"
	"github.com/webext-tools/png-saver/internal/database"
	"github.com/webext-tools/png-saver/internal/pkg/converter"
	"github.com/webext-tools/png-saver/internal/pkg/fetcher"
	"github.com/webext-tools/png-saver/internal/pkg/kafka"
	"github.com/webext-tools/png-saver/internal/pkg/menu"
	"github.com/webext-tools/png-saver/internal/pkg/notifier"
	"github.com/webext-tools/png-saver/internal/pkg/storage"
	"github.com/webext-tools/png-saver/internal/service"
	"github.com/webext-tools/png-saver/internal/transport"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(new(logrus.JSONFormatter))

	// Startup registration is an idempotent upsert: re-registering the
	// same entry updates its title in place.
	menuRegistry := menu.NewRegistry()
	menuRegistry.Upsert(menu.Entry{
		ID:       cfg.App.MenuItemID,
		Title:    cfg.App.MenuTitle,
		Contexts: []string{"image"},
	})

	fileStorage := storage.NewFileStorage(cfg.App.DownloadsDir)
	downloadRepo := database.NewDownloadRepository(fileStorage)
	imageFetcher := fetcher.New(cfg.App.FetchTimeout)
	imageConverter := converter.New()
	failureNotifier := notifier.NewLogNotifier()

	var producer kafka.Producer
	if cfg.App.Mode == service.ModeQueue {
		producer = kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	convertService := service.NewConvertService(
		menuRegistry,
		imageFetcher,
		imageConverter,
		downloadRepo,
		failureNotifier,
		producer,
		&service.ConvertServiceConfig{
			Mode:  cfg.App.Mode,
			Topic: cfg.Kafka.Topic,
		},
	)
	clickHandler := transport.NewClickHandler(convertService)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(clickHandler)); err != nil {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}

}
