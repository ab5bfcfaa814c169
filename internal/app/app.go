package app

import (
	"context"
	"net/http"

	"github.com/zonbirandosaga-tech/hianime-mapper/internal/pkg/pkgconfig"
	"github.com/zonbirandosaga-tech/hianime-mapper/internal/pkg/pkgmetric"
	"github.com/zonbirandosaga-tech/hianime-mapper/internal/pkg/pkgrouter"
	"github.com/zonbirandosaga-tech/hianime-mapper/internal/pkg/pkguid"
)

type App struct {
	// configuration
	config   pkgconfig.Config
	settings Settings

	// libraries
	uuid       pkguid.StringID
	metrics    *pkgmetric.Metrics
	httpClient *http.Client

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	//
	closerFn map[string]func(context.Context) error
}

func New() *App {
	app := &App{}

	app.initConfig()
	app.initLogging()
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
