package entity

import "time"

// Game is the canonical catalog record. It is rebuilt on every fetch and never
// mutated afterwards; two fetches of the same ID may differ in rating or genres.
type Game struct {
	ID               int      `json:"id" firestore:"id"`
	Name             string   `json:"name" firestore:"name"`
	Slug             string   `json:"slug,omitempty" firestore:"slug,omitempty"`
	Summary          string   `json:"summary,omitempty" firestore:"summary,omitempty"`
	CoverURL         *string  `json:"coverUrl" firestore:"coverUrl"`
	ArtworkURLs      []string `json:"artworkUrls" firestore:"artworkUrls"`
	ScreenshotURLs   []string `json:"screenshotUrls" firestore:"screenshotUrls"`
	FirstReleaseDate *string  `json:"firstReleaseDate" firestore:"firstReleaseDate"`
	Genres           []string `json:"genres" firestore:"genres"`
	Platforms        []string `json:"platforms" firestore:"platforms"`
	Rating           *float64 `json:"rating" firestore:"rating"`
	Videos           []Video  `json:"videos,omitempty" firestore:"videos,omitempty"`
}

type Video struct {
	VideoID string `json:"videoId" firestore:"videoId"`
	Name    string `json:"name" firestore:"name"`
}

// ReleaseYear returns 0 when the release date is unknown.
func (g Game) ReleaseYear() int {
	if g.FirstReleaseDate == nil {
		return 0
	}
	t, err := time.Parse(time.RFC3339, *g.FirstReleaseDate)
	if err != nil {
		return 0
	}
	return t.Year()
}

// CachedGame is a Game snapshot persisted by the curated cache job.
type CachedGame struct {
	Game     Game      `firestore:"game"`
	CachedAt time.Time `firestore:"cached_at"`
}

// CuratedGame is one entry of the editor-maintained curated list.
type CuratedGame struct {
	IGDBID int    `json:"igdbId" firestore:"igdb_id"`
	Title  string `json:"title" firestore:"title"`
}
