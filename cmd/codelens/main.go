package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"codelens/internal/analyze"
	"codelens/internal/config"
	"codelens/internal/engine/gemini"
	"codelens/internal/engine/openai"
	"codelens/internal/handle"
	"codelens/internal/httpserver"
	"codelens/internal/logging"
	"codelens/web"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.LogLevel, cfg.LogFormat)

	engines := &analyze.Engines{
		Gemini: gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
		OpenAI: openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel),
	}
	engine, err := engines.Get(cfg.Engine)
	if err != nil {
		logrus.Fatalf("engine selection: %v", err)
	}
	if !engine.Configured() {
		// Fail closed per request, but tell the operator up front.
		logrus.Warnf("%s is not set; /api/analyze will answer 500 until it is", engine.CredentialVar())
	}

	h := handle.New(engine, cfg.AnalyzeTimeout, cfg.MaxBodyBytes)
	router := httpserver.NewRouter(h, web.Static(), cfg.CORSOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.AnalyzeTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logrus.Infof("codelens listening on %s (engine=%s)", srv.Addr, engine.Name())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logrus.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("shutdown error: %v", err)
	}
}
