package outbound

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/zonbirandosaga-tech/hianime-mapper/internal/anime/entity"
)

// DefaultHianimeURL is the streaming site the episode and source data comes from.
const DefaultHianimeURL = "https://hianime.to"

// embed-2/e-1/<id> and the versioned embed-2/v3/e-1/<id> layouts.
var embedPath = regexp.MustCompile(`^/(embed-\d+)/(?:(v\d+)/)?(e-\d+)/([^/]+)$`)

type ajaxFragment struct {
	Status bool   `json:"status"`
	HTML   string `json:"html"`
}

type ajaxLink struct {
	Type   string `json:"type"`
	Link   string `json:"link"`
	Server int    `json:"server"`
}

type embedSources struct {
	Sources   json.RawMessage `json:"sources"`
	Encrypted bool            `json:"encrypted"`
	Tracks    []struct {
		File    string `json:"file"`
		Label   string `json:"label"`
		Kind    string `json:"kind"`
		Default bool   `json:"default"`
	} `json:"tracks"`
	Intro entity.Segment `json:"intro"`
	Outro entity.Segment `json:"outro"`
}

type embedFile struct {
	File string `json:"file"`
	Type string `json:"type"`
}

// Hianime reads episodes, servers and sources from hianime.to ajax endpoints.
type Hianime struct {
	upstream
	embed   upstream
	baseURL string
}

// NewHianime returns a client for baseURL (DefaultHianimeURL when empty).
func NewHianime(client *http.Client, baseURL string, observer Observer) *Hianime {
	if baseURL == "" {
		baseURL = DefaultHianimeURL
	}
	return &Hianime{
		upstream: newUpstream("hianime", client, observer),
		embed:    newUpstream("embed", client, observer),
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

func (h *Hianime) ajaxHeaders(referer string) map[string]string {
	return map[string]string{
		"X-Requested-With": "XMLHttpRequest",
		"Referer":          referer,
	}
}

// Episodes lists the episodes of the anime with the given hianime id.
func (h *Hianime) Episodes(ctx context.Context, hianimeID string) ([]entity.Episode, error) {
	target := h.baseURL + "/ajax/v2/episode/list/" + url.PathEscape(hianimeID)

	var frag ajaxFragment
	if err := h.get(ctx, target, h.ajaxHeaders(h.baseURL+"/"), &frag); err != nil {
		return nil, err
	}
	if !frag.Status {
		return nil, notFound("hianime: episode list of %q", hianimeID)
	}

	return parseEpisodes(frag.HTML)
}

// Servers lists the video servers offering the given episode.
func (h *Hianime) Servers(ctx context.Context, episodeID string) ([]entity.Server, error) {
	target := h.baseURL + "/ajax/v2/episode/servers?" + url.Values{"episodeId": {episodeID}}.Encode()

	var frag ajaxFragment
	if err := h.get(ctx, target, h.ajaxHeaders(h.watchURL(episodeID)), &frag); err != nil {
		return nil, err
	}
	if !frag.Status {
		return nil, notFound("hianime: servers of episode %q", episodeID)
	}

	return parseServers(frag.HTML)
}

// Sources resolves the stream urls that serverID offers for episodeID.
func (h *Hianime) Sources(ctx context.Context, serverID, episodeID string) (*entity.Sources, error) {
	target := h.baseURL + "/ajax/v2/episode/sources?" + url.Values{"id": {serverID}}.Encode()

	var link ajaxLink
	if err := h.get(ctx, target, h.ajaxHeaders(h.watchURL(episodeID)), &link); err != nil {
		return nil, err
	}
	if link.Link == "" {
		return nil, notFound("hianime: no embed link for server %q", serverID)
	}

	sourcesURL, origin, err := embedSourcesURL(link.Link)
	if err != nil {
		return nil, err
	}

	var raw embedSources
	if err := h.embed.get(ctx, sourcesURL, h.ajaxHeaders(link.Link), &raw); err != nil {
		return nil, err
	}

	files, err := decodeEmbedFiles(raw)
	if err != nil {
		return nil, err
	}

	out := &entity.Sources{
		Headers: map[string]string{"Referer": origin + "/"},
		Sources: make([]entity.Source, 0, len(files)),
		Tracks:  make([]entity.Track, 0, len(raw.Tracks)),
		Intro:   raw.Intro,
		Outro:   raw.Outro,
		Server:  link.Server,
	}
	for _, f := range files {
		out.Sources = append(out.Sources, entity.Source{
			URL:    f.File,
			Type:   f.Type,
			IsM3U8: f.Type == "hls" || strings.Contains(f.File, ".m3u8"),
		})
	}
	for _, t := range raw.Tracks {
		out.Tracks = append(out.Tracks, entity.Track{URL: t.File, Lang: t.Label, Kind: t.Kind, Default: t.Default})
	}

	return out, nil
}

func (h *Hianime) watchURL(episodeID string) string {
	return h.baseURL + "/watch?" + url.Values{"ep": {episodeID}}.Encode()
}

// embedSourcesURL maps an embed player link to its getSources endpoint and
// returns the embed origin used as Referer for playback.
func embedSourcesURL(link string) (string, string, error) {
	u, err := url.Parse(link)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", "", fmt.Errorf("embed: invalid link %q", link)
	}

	m := embedPath.FindStringSubmatch(u.Path)
	if m == nil {
		return "", "", fmt.Errorf("embed: unsupported link layout %q", link)
	}
	embed, version, e, sourceID := m[1], m[2], m[3], m[4]

	origin := u.Scheme + "://" + u.Host
	query := url.Values{"id": {sourceID}}.Encode()
	if version == "" {
		return fmt.Sprintf("%s/%s/ajax/%s/getSources?%s", origin, embed, e, query), origin, nil
	}
	return fmt.Sprintf("%s/%s/%s/%s/getSources?%s", origin, embed, version, e, query), origin, nil
}

func decodeEmbedFiles(raw embedSources) ([]embedFile, error) {
	trimmed := strings.TrimSpace(string(raw.Sources))
	if raw.Encrypted || strings.HasPrefix(trimmed, `"`) {
		return nil, ErrEncryptedSources
	}
	if trimmed == "" || trimmed == "null" {
		return nil, notFound("embed: no sources")
	}

	var files []embedFile
	if err := json.Unmarshal(raw.Sources, &files); err != nil {
		return nil, fmt.Errorf("embed: decode sources: %w", err)
	}
	return files, nil
}
