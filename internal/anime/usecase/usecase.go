package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/zonbirandosaga-tech/hianime-mapper/internal/anime/entity"
	"github.com/zonbirandosaga-tech/hianime-mapper/internal/pkg/pkgerror"
	"github.com/zonbirandosaga-tech/hianime-mapper/internal/pkg/pkgroutine"
)

type Metadata interface {
	Media(ctx context.Context, id int) (entity.Media, error)
}

type Mapper interface {
	Lookup(ctx context.Context, anilistID int) (entity.Mapping, error)
}

type Streaming interface {
	Episodes(ctx context.Context, hianimeID string) ([]entity.Episode, error)
	Servers(ctx context.Context, episodeID string) ([]entity.Server, error)
	Sources(ctx context.Context, serverID, episodeID string) (*entity.Sources, error)
}

type Dependency struct {
	Metadata  Metadata
	Mapper    Mapper
	Streaming Streaming
}

type Usecase struct {
	metadata  Metadata
	mapper    Mapper
	streaming Streaming
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		metadata:  dep.Metadata,
		mapper:    dep.Mapper,
		streaming: dep.Streaming,
	}
}

func (u *Usecase) ready() error {
	if u.metadata == nil || u.mapper == nil || u.streaming == nil {
		return errors.New("usecase: missing dependency")
	}
	return nil
}

// FetchInfo joins the Anilist metadata of anilistID with its hianime.to page
// and episode list. Both lookups run concurrently; the first failure cancels
// the other.
func (u *Usecase) FetchInfo(ctx context.Context, anilistID int) (*entity.AnimeInfo, error) {
	if err := u.ready(); err != nil {
		return nil, err
	}
	if anilistID <= 0 {
		return nil, fmt.Errorf("anilist id %d: %w", anilistID, pkgerror.ErrNotFound)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		media    entity.Media
		mapping  entity.Mapping
		episodes []entity.Episode
	)

	runner := pkgroutine.NewManager(2)
	runner.Go(ctx, func(ctx context.Context) error {
		var err error
		if media, err = u.metadata.Media(ctx, anilistID); err != nil {
			cancel()
			return err
		}
		return nil
	})
	runner.Go(ctx, func(ctx context.Context) error {
		var err error
		if mapping, err = u.mapper.Lookup(ctx, anilistID); err != nil {
			cancel()
			return err
		}
		if episodes, err = u.streaming.Episodes(ctx, mapping.HianimeID); err != nil {
			cancel()
			return err
		}
		return nil
	})

	if err := runner.Wait(); err != nil {
		slog.DebugContext(ctx, "fetch info failed", "anilist_id", anilistID, "error", err)
		return nil, firstCause(err)
	}

	return &entity.AnimeInfo{
		Media:        media,
		Hianime:      mapping,
		EpisodesList: episodes,
	}, nil
}

// ListServers returns the servers offering episodeID.
func (u *Usecase) ListServers(ctx context.Context, episodeID string) ([]entity.Server, error) {
	if err := u.ready(); err != nil {
		return nil, err
	}
	return u.streaming.Servers(ctx, episodeID)
}

// ResolveSources returns the stream links serverID offers for episodeID.
func (u *Usecase) ResolveSources(ctx context.Context, serverID, episodeID string) (*entity.Sources, error) {
	if err := u.ready(); err != nil {
		return nil, err
	}
	return u.streaming.Sources(ctx, serverID, episodeID)
}

// firstCause drops the context.Canceled errors that the cancellation of a
// sibling lookup produces, keeping the failure that triggered it.
func firstCause(err error) error {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return err
	}

	var causes []error
	for _, e := range joined.Unwrap() {
		if !errors.Is(e, context.Canceled) {
			causes = append(causes, e)
		}
	}
	if len(causes) == 0 {
		return err
	}
	return errors.Join(causes...)
}
