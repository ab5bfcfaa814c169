package outbound

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/zonbirandosaga-tech/hianime-mapper/internal/anime/entity"
)

// DefaultAnilistURL is the public Anilist GraphQL endpoint.
const DefaultAnilistURL = "https://graphql.anilist.co"

const mediaQuery = `
query ($id: Int) {
	Media (id: $id, type: ANIME) {
		id
		idMal
		title {
			romaji
			english
			native
		}
		description(asHtml: false)
		coverImage {
			extraLarge
			large
		}
		bannerImage
		genres
		synonyms
		status
		format
		season
		seasonYear
		episodes
		averageScore
	}
}
`

type anilistMedia struct {
	ID    int `json:"id"`
	IDMal int `json:"idMal"`
	Title struct {
		Romaji  string `json:"romaji"`
		English string `json:"english"`
		Native  string `json:"native"`
	} `json:"title"`
	Description string `json:"description"`
	CoverImage  struct {
		ExtraLarge string `json:"extraLarge"`
		Large      string `json:"large"`
	} `json:"coverImage"`
	BannerImage  string   `json:"bannerImage"`
	Genres       []string `json:"genres"`
	Synonyms     []string `json:"synonyms"`
	Status       string   `json:"status"`
	Format       string   `json:"format"`
	Season       string   `json:"season"`
	SeasonYear   int      `json:"seasonYear"`
	Episodes     int      `json:"episodes"`
	AverageScore int      `json:"averageScore"`
}

type anilistResponse struct {
	Data struct {
		Media *anilistMedia `json:"Media"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
		Status  int    `json:"status"`
	} `json:"errors"`
}

// Anilist reads anime metadata from the Anilist GraphQL API.
type Anilist struct {
	upstream
	endpoint string
}

// NewAnilist returns an Anilist client for endpoint (DefaultAnilistURL when empty).
func NewAnilist(client *http.Client, endpoint string, observer Observer) *Anilist {
	if endpoint == "" {
		endpoint = DefaultAnilistURL
	}
	return &Anilist{upstream: newUpstream("anilist", client, observer), endpoint: endpoint}
}

// Media fetches the anime with the given Anilist id.
func (a *Anilist) Media(ctx context.Context, id int) (entity.Media, error) {
	payload, err := json.Marshal(map[string]any{
		"query":     mediaQuery,
		"variables": map[string]any{"id": id},
	})
	if err != nil {
		return entity.Media{}, fmt.Errorf("anilist: encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(payload))
	if err != nil {
		return entity.Media{}, fmt.Errorf("anilist: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	var resp anilistResponse
	if err := a.doJSON(req, &resp); err != nil {
		return entity.Media{}, err
	}

	if resp.Data.Media == nil {
		for _, e := range resp.Errors {
			if e.Status != http.StatusNotFound {
				return entity.Media{}, fmt.Errorf("anilist: %s", e.Message)
			}
		}
		return entity.Media{}, notFound("anilist: media %d", id)
	}

	return toMedia(resp.Data.Media), nil
}

func toMedia(m *anilistMedia) entity.Media {
	cover := m.CoverImage.ExtraLarge
	if cover == "" {
		cover = m.CoverImage.Large
	}

	return entity.Media{
		ID:    m.ID,
		MalID: m.IDMal,
		Title: entity.Title{
			Romaji:  m.Title.Romaji,
			English: m.Title.English,
			Native:  m.Title.Native,
		},
		Description:  strings.TrimSpace(m.Description),
		CoverImage:   cover,
		BannerImage:  m.BannerImage,
		Genres:       m.Genres,
		Synonyms:     m.Synonyms,
		Status:       m.Status,
		Format:       m.Format,
		Season:       m.Season,
		SeasonYear:   m.SeasonYear,
		Episodes:     m.Episodes,
		AverageScore: m.AverageScore,
	}
}
