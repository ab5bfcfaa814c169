package inbound

import (
	"context"
	"net/http"

	"github.com/zonbirandosaga-tech/hianime-mapper/internal/anime/entity"
	"github.com/zonbirandosaga-tech/hianime-mapper/internal/pkg/pkgrouter"
)

type uc interface {
	FetchInfo(ctx context.Context, anilistID int) (*entity.AnimeInfo, error)
	ListServers(ctx context.Context, episodeID string) ([]entity.Server, error)
	ResolveSources(ctx context.Context, serverID, episodeID string) (*entity.Sources, error)
}

// RegisterHTTPEndpoint mounts the root document and the anime endpoints on r.
// With distinctStatus, not-found and upstream failures answer 404 and 502
// instead of the generic 500.
func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc, distinctStatus bool) {
	end := &HTTPEndpoint{uc: uc, distinctStatus: distinctStatus}

	r.Handle(http.MethodGet, "/", http.HandlerFunc(end.Root))

	r.GET("/anime/info/:id", end.Info)
	r.GET("/anime/servers/:id", end.Servers)
	r.GET("/anime/sources", end.Sources) // ?serverId=&episodeId=
}
