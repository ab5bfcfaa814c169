package entity

// ServerType tells which audio track a video server carries.
type ServerType string

const (
	ServerTypeSub ServerType = "sub"
	ServerTypeDub ServerType = "dub"
	ServerTypeRaw ServerType = "raw"
)

// Server is a video backend offering an episode. ID is the token accepted
// as serverId by the sources endpoint.
type Server struct {
	ID       string     `json:"id"`
	ServerID int        `json:"serverId"`
	Type     ServerType `json:"type"`
	Name     string     `json:"name"`
}

// Source is a playable stream url.
type Source struct {
	URL    string `json:"url"`
	Type   string `json:"type"`
	IsM3U8 bool   `json:"isM3U8"`
}

// Track is a subtitle or thumbnail track.
type Track struct {
	URL     string `json:"url"`
	Lang    string `json:"lang"`
	Kind    string `json:"kind"`
	Default bool   `json:"default"`
}

// Segment marks an intro or outro in seconds.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Sources is the payload of the sources endpoint.
type Sources struct {
	Headers map[string]string `json:"headers"`
	Sources []Source          `json:"sources"`
	Tracks  []Track           `json:"tracks"`
	Intro   Segment           `json:"intro"`
	Outro   Segment           `json:"outro"`
	Server  int               `json:"server"`
}
