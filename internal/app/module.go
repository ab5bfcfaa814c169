package app

import (
	"github.com/zonbirandosaga-tech/hianime-mapper/internal/anime"
)

func (a *App) initModules() {
	anime.New(anime.Dependency{
		Router:     a.router,
		HTTPClient: a.httpClient,
		Observer:   a.metrics,
		Upstreams: anime.Upstreams{
			AnilistURL: a.settings.AnilistURL,
			MappingURL: a.settings.MappingURL,
			HianimeURL: a.settings.HianimeURL,
		},
		DistinctStatus: a.settings.DistinctStatus,
	})
}
