package outbound

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/zonbirandosaga-tech/hianime-mapper/internal/anime/entity"
)

func parseFragment(fragment string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("hianime: parse html: %w", err)
	}
	return doc, nil
}

// parseEpisodes reads the `a.ep-item` links of an episode list fragment.
func parseEpisodes(fragment string) ([]entity.Episode, error) {
	doc, err := parseFragment(fragment)
	if err != nil {
		return nil, err
	}

	episodes := make([]entity.Episode, 0)
	doc.Find("a.ep-item").Each(func(_ int, s *goquery.Selection) {
		id := strings.TrimSpace(s.AttrOr("data-id", ""))
		if id == "" {
			return
		}

		number, _ := strconv.Atoi(strings.TrimSpace(s.AttrOr("data-number", "")))
		title := strings.TrimSpace(s.AttrOr("title", ""))
		if title == "" {
			title = strings.TrimSpace(s.Find(".ep-name").First().Text())
		}

		episodes = append(episodes, entity.Episode{
			ID:       id,
			Number:   number,
			Title:    title,
			IsFiller: s.HasClass("ssl-item-filler"),
		})
	})

	return episodes, nil
}

// parseServers reads the `.server-item` blocks of a servers fragment.
func parseServers(fragment string) ([]entity.Server, error) {
	doc, err := parseFragment(fragment)
	if err != nil {
		return nil, err
	}

	servers := make([]entity.Server, 0)
	doc.Find(".server-item").Each(func(_ int, s *goquery.Selection) {
		id := strings.TrimSpace(s.AttrOr("data-id", ""))
		if id == "" {
			return
		}

		serverID, _ := strconv.Atoi(strings.TrimSpace(s.AttrOr("data-server-id", "")))
		servers = append(servers, entity.Server{
			ID:       id,
			ServerID: serverID,
			Type:     entity.ServerType(strings.ToLower(strings.TrimSpace(s.AttrOr("data-type", "")))),
			Name:     strings.TrimSpace(s.Text()),
		})
	})

	return servers, nil
}
