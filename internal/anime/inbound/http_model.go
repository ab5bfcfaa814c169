package inbound

import "net/http"

type RootResponse struct {
	About  string   `json:"about"`
	Status int      `json:"status"`
	Routes []string `json:"routes"`
}

var rootDocument = RootResponse{
	About:  "This API maps anilist anime to https://hianime.to and also returns the M3U8 links !",
	Status: http.StatusOK,
	Routes: []string{
		"/anime/info/:anilistId",
		"/anime/servers/:episodeId",
		"/anime/sources?serverId={server_id}&episodeId={episode_id}",
	},
}

const (
	msgInternal       = "Internal server issue !"
	msgNotFound       = "Resource not found !"
	msgUpstream       = "Upstream service issue !"
	msgMissingSources = "Both serverId and episodeId are required!"
)
