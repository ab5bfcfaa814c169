package anime

import (
	"net/http"

	"github.com/zonbirandosaga-tech/hianime-mapper/internal/anime/inbound"
	"github.com/zonbirandosaga-tech/hianime-mapper/internal/anime/outbound"
	"github.com/zonbirandosaga-tech/hianime-mapper/internal/anime/usecase"
	"github.com/zonbirandosaga-tech/hianime-mapper/internal/pkg/pkgrouter"
)

type Upstreams struct {
	AnilistURL string
	MappingURL string
	HianimeURL string
}

type Dependency struct {
	Router         *pkgrouter.Router
	HTTPClient     *http.Client
	Observer       outbound.Observer
	Upstreams      Upstreams
	DistinctStatus bool
}

func New(dep Dependency) {
	uc := usecase.New(usecase.Dependency{
		Metadata:  outbound.NewAnilist(dep.HTTPClient, dep.Upstreams.AnilistURL, dep.Observer),
		Mapper:    outbound.NewMapper(dep.HTTPClient, dep.Upstreams.MappingURL, dep.Observer),
		Streaming: outbound.NewHianime(dep.HTTPClient, dep.Upstreams.HianimeURL, dep.Observer),
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, dep.DistinctStatus)
}
