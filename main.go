package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	facebookclient "publisher-gateway/infrastructure/clients/facebook"
	"publisher-gateway/infrastructure/configuration"
	"publisher-gateway/infrastructure/logger"
	httpHandler "publisher-gateway/interfaces/http"
	"publisher-gateway/server"
	"publisher-gateway/usecase"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()

	config, err := configuration.Load(".env")
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Invalid configuration")
	}
	logger.Configure(config.App.Debug)
	if config.App.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	if !config.AuthEnabled() {
		logger.GetLogger().Warn("API_KEY not set; /api/facebook endpoints are open to anyone")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	graph := facebookclient.NewGraphClient(ctx, &facebookclient.Config{
		PageID:      config.Facebook.PageID,
		AccessToken: config.Facebook.AccessToken,
		APIVersion:  config.Facebook.APIVersion,
		BaseURL:     config.Facebook.GraphBaseURL,
		Timeout:     config.Facebook.Timeout,
	})
	publishUsecase := usecase.NewFacebookPublishUsecase(graph, config.Facebook.PhotoCommentLabel)
	analyticsUsecase := usecase.NewFacebookAnalyticsUsecase(graph, config.App.AnalyticsConcurrency)

	router := server.InitiateRouter(
		config,
		httpHandler.NewHealthHandler(),
		httpHandler.NewFacebookHandler(publishUsecase, analyticsUsecase),
	)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.App.Port),
		Handler: router,
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"port":                 config.App.Port,
		"debug":                config.App.Debug,
		"apiVersion":           config.Facebook.APIVersion,
		"authEnabled":          config.AuthEnabled(),
		"analyticsConcurrency": config.App.AnalyticsConcurrency,
	}).Info("Starting application")

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = httpServer.Shutdown(shutdownCtx)

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
