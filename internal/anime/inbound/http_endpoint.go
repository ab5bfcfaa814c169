package inbound

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/zonbirandosaga-tech/hianime-mapper/internal/pkg/pkgerror"
	"github.com/zonbirandosaga-tech/hianime-mapper/internal/pkg/pkgrouter"
)

var errEmptyResult = errors.New("resolver returned no result")

type HTTPEndpoint struct {
	uc             uc
	distinctStatus bool
}

func (h *HTTPEndpoint) Root(w http.ResponseWriter, _ *http.Request) {
	pkgrouter.WriteJSON(w, rootDocument, http.StatusOK)
}

func (h *HTTPEndpoint) Info(ctx context.Context, r *http.Request) (any, error) {
	id, err := strconv.Atoi(pkgrouter.GetParam(ctx, "id"))
	if err != nil {
		return nil, h.failure(ctx, "info", err)
	}

	info, err := h.uc.FetchInfo(ctx, id)
	if err != nil {
		return nil, h.failure(ctx, "info", err)
	}
	if info == nil {
		return nil, h.failure(ctx, "info", errEmptyResult)
	}

	return info, nil
}

func (h *HTTPEndpoint) Servers(ctx context.Context, r *http.Request) (any, error) {
	servers, err := h.uc.ListServers(ctx, pkgrouter.GetParam(ctx, "id"))
	if err != nil {
		return nil, h.failure(ctx, "servers", err)
	}
	if servers == nil {
		return nil, h.failure(ctx, "servers", errEmptyResult)
	}

	return servers, nil
}

func (h *HTTPEndpoint) Sources(ctx context.Context, r *http.Request) (any, error) {
	query := r.URL.Query()
	serverID := query.Get("serverId")
	episodeID := query.Get("episodeId")
	if serverID == "" || episodeID == "" {
		return nil, pkgerror.NewInvalidInput(msgMissingSources)
	}

	sources, err := h.uc.ResolveSources(ctx, serverID, episodeID)
	if err != nil {
		return nil, h.failure(ctx, "sources", err)
	}
	if sources == nil {
		return nil, h.failure(ctx, "sources", errEmptyResult)
	}

	return sources, nil
}

func (h *HTTPEndpoint) failure(ctx context.Context, op string, err error) error {
	slog.WarnContext(ctx, "resolver failed", "operation", op, "error", err)

	if !h.distinctStatus {
		return pkgerror.NewServer(err, msgInternal)
	}

	switch {
	case errors.Is(err, pkgerror.ErrNotFound):
		return pkgerror.NewNotFound(err, msgNotFound)
	case errors.Is(err, errEmptyResult), errors.Is(err, strconv.ErrSyntax), errors.Is(err, strconv.ErrRange):
		return pkgerror.NewServer(err, msgInternal)
	default:
		return pkgerror.NewBadGateway(err, msgUpstream)
	}
}
