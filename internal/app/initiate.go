package app

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/zonbirandosaga-tech/hianime-mapper/internal/pkg/pkgconfig"
	"github.com/zonbirandosaga-tech/hianime-mapper/internal/pkg/pkghttp"
	"github.com/zonbirandosaga-tech/hianime-mapper/internal/pkg/pkglog"
	"github.com/zonbirandosaga-tech/hianime-mapper/internal/pkg/pkgmetric"
	"github.com/zonbirandosaga-tech/hianime-mapper/internal/pkg/pkgrouter"
	"github.com/zonbirandosaga-tech/hianime-mapper/internal/pkg/pkguid"
)

const defaultConfigFile = "./config/config.yaml"

func (a *App) initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = defaultConfigFile
	}

	cfg, err := pkgconfig.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "path", path, "error", err)
		os.Exit(1)
	}

	a.config = cfg
	a.settings = loadSettings(cfg)
}

func (a *App) initLogging() {
	pkglog.InitLogging(pkglog.Options{Level: a.settings.LogLevel})
}

func (a *App) initLibraries() {
	a.uuid = pkguid.NewUUID()
	a.metrics = pkgmetric.New()

	client, err := pkghttp.NewClient(pkghttp.Options{
		Timeout:  a.settings.Timeout,
		ProxyURL: a.settings.ProxyURL,
	})
	if err != nil {
		slog.Error("failed to init http client", "error", err)
		os.Exit(1)
	}
	a.httpClient = client
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uuid)
	a.router.Use(a.metrics.Middleware)
	a.router.Handle(http.MethodGet, "/metrics", a.metrics.Handler())

	a.httpServer = &http.Server{
		Addr:              ":" + strconv.Itoa(a.settings.Port),
		Handler:           pkgrouter.CORS(a.settings.AllowedOrigins)(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["HTTP Client"] = func(context.Context) error {
		a.httpClient.CloseIdleConnections()
		return nil
	}
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
