package outbound

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/zonbirandosaga-tech/hianime-mapper/internal/anime/entity"
)

// DefaultMappingURL is the mal-backup dataset keyed by Anilist id.
const DefaultMappingURL = "https://raw.githubusercontent.com/bal-mackup/mal-backup/master/anilist/anime"

// hianime.to pages were listed under their former "Zoro" name.
const mappingSite = "Zoro"

var trailingID = regexp.MustCompile(`-(\d+)$`)

type mappingEntry struct {
	Identifier string `json:"identifier"`
	URL        string `json:"url"`
	Title      string `json:"title"`
}

type mappingDocument struct {
	Sites map[string]map[string]mappingEntry `json:"Sites"`
}

// Mapper resolves an Anilist id to its hianime.to page.
type Mapper struct {
	upstream
	baseURL string
}

// NewMapper returns a Mapper reading from baseURL (DefaultMappingURL when empty).
func NewMapper(client *http.Client, baseURL string, observer Observer) *Mapper {
	if baseURL == "" {
		baseURL = DefaultMappingURL
	}
	return &Mapper{upstream: newUpstream("mapping", client, observer), baseURL: strings.TrimRight(baseURL, "/")}
}

// Lookup returns the hianime.to entry of the given Anilist id.
func (m *Mapper) Lookup(ctx context.Context, anilistID int) (entity.Mapping, error) {
	var doc mappingDocument
	if err := m.get(ctx, fmt.Sprintf("%s/%d.json", m.baseURL, anilistID), nil, &doc); err != nil {
		return entity.Mapping{}, err
	}

	entries := doc.Sites[mappingSite]
	if len(entries) == 0 {
		return entity.Mapping{}, notFound("mapping: no hianime entry for anilist %d", anilistID)
	}

	keys := lo.Keys(entries)
	slices.Sort(keys)

	for _, key := range keys {
		if mapping, ok := toMapping(key, entries[key]); ok {
			return mapping, nil
		}
	}

	return entity.Mapping{}, notFound("mapping: unusable hianime entry for anilist %d", anilistID)
}

func toMapping(key string, e mappingEntry) (entity.Mapping, bool) {
	var slug string
	if u, err := url.Parse(e.URL); err == nil {
		slug = path.Base(strings.TrimRight(u.Path, "/"))
	}
	if slug == "." || slug == "/" {
		slug = ""
	}

	id := e.Identifier
	if id == "" {
		id = key
	}
	if id == "" {
		if m := trailingID.FindStringSubmatch(slug); m != nil {
			id = m[1]
		}
	}
	if id == "" {
		return entity.Mapping{}, false
	}

	return entity.Mapping{HianimeID: id, Slug: slug, URL: e.URL, Title: e.Title}, true
}
