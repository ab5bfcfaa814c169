package app

import (
	"time"

	"github.com/zonbirandosaga-tech/hianime-mapper/internal/anime/outbound"
	"github.com/zonbirandosaga-tech/hianime-mapper/internal/pkg/pkgconfig"
	"github.com/zonbirandosaga-tech/hianime-mapper/internal/pkg/pkghttp"
)

const defaultPort = 5000

// Settings is read once at start and never mutated afterwards.
type Settings struct {
	Port           int
	AllowedOrigins []string
	LogLevel       string

	AnilistURL string
	MappingURL string
	HianimeURL string
	Timeout    time.Duration
	ProxyURL   string

	DistinctStatus bool
}

func loadSettings(cfg pkgconfig.Config) Settings {
	s := Settings{
		Port:           int(cfg.GetInt("port")),
		AllowedOrigins: cfg.GetArray("allowed_origins"),
		LogLevel:       cfg.GetString("log.level"),
		AnilistURL:     cfg.GetString("upstream.anilist_url"),
		MappingURL:     cfg.GetString("upstream.mapping_url"),
		HianimeURL:     cfg.GetString("upstream.hianime_url"),
		Timeout:        cfg.GetDuration("upstream.timeout"),
		ProxyURL:       cfg.GetString("upstream.proxy_url"),
		DistinctStatus: cfg.GetBool("errors.distinct_status"),
	}

	// viper yields 0 for absent and non-numeric values alike
	if s.Port <= 0 {
		s.Port = defaultPort
	}
	if s.AnilistURL == "" {
		s.AnilistURL = outbound.DefaultAnilistURL
	}
	if s.MappingURL == "" {
		s.MappingURL = outbound.DefaultMappingURL
	}
	if s.HianimeURL == "" {
		s.HianimeURL = outbound.DefaultHianimeURL
	}
	if s.Timeout <= 0 {
		s.Timeout = pkghttp.DefaultTimeout
	}

	return s
}
