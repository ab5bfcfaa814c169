package entity

// Title holds the known titles of an anime.
type Title struct {
	Romaji  string `json:"romaji"`
	English string `json:"english"`
	Native  string `json:"native"`
}

// Media is the Anilist metadata of an anime.
type Media struct {
	ID           int      `json:"id"`
	MalID        int      `json:"malId"`
	Title        Title    `json:"title"`
	Description  string   `json:"description"`
	CoverImage   string   `json:"coverImage"`
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

// Mapping links an Anilist entry to its hianime.to page.
type Mapping struct {
	HianimeID string `json:"id"`
	Slug      string `json:"slug"`
	URL       string `json:"url"`
	Title     string `json:"title"`
}

// Episode is one entry of the hianime.to episode list. ID is the token
// accepted by the servers and sources endpoints.
type Episode struct {
	ID       string `json:"id"`
	Number   int    `json:"number"`
	Title    string `json:"title"`
	IsFiller bool   `json:"isFiller"`
}

// AnimeInfo is the payload of the info endpoint.
type AnimeInfo struct {
	Media
	Hianime      Mapping   `json:"hianime"`
	EpisodesList []Episode `json:"episodesList"`
}
