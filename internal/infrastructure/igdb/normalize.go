package igdb

import (
	"fmt"
	"time"

	"sweaty/internal/domain/entity"
)

const imageURLTemplate = "https://images.igdb.com/igdb/image/upload/t_%s/%s.jpg"

const (
	coverSize      = "cover_big"
	artworkSize    = "1080p"
	screenshotSize = "screenshot_big"
)

type rawImage struct {
	ImageID string `json:"image_id"`
}

type rawNamed struct {
	Name string `json:"name"`
}

type rawVideo struct {
	VideoID string `json:"video_id"`
	Name    string `json:"name"`
}

// rawGame is the catalog's /games shape for the fields we request.
type rawGame struct {
	ID               int        `json:"id"`
	Name             string     `json:"name"`
	Slug             string     `json:"slug"`
	Summary          string     `json:"summary"`
	Cover            *rawImage  `json:"cover"`
	FirstReleaseDate *int64     `json:"first_release_date"`
	Genres           []rawNamed `json:"genres"`
	Platforms        []rawNamed `json:"platforms"`
	TotalRating      *float64   `json:"total_rating"`
	AggregatedRating *float64   `json:"aggregated_rating"`
	Artworks         []rawImage `json:"artworks"`
	Screenshots      []rawImage `json:"screenshots"`
	Videos           []rawVideo `json:"videos"`
}

func imageURL(size, imageID string) string {
	return fmt.Sprintf(imageURLTemplate, size, imageID)
}

func imageURLs(size string, images []rawImage) []string {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		if img.ImageID != "" {
			urls = append(urls, imageURL(size, img.ImageID))
		}
	}
	return urls
}

func names(items []rawNamed) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item.Name != "" {
			out = append(out, item.Name)
		}
	}
	return out
}

// normalizeGame never fails: missing source data becomes nil or an empty slice.
func normalizeGame(raw rawGame) entity.Game {
	game := entity.Game{
		ID:             raw.ID,
		Name:           raw.Name,
		Slug:           raw.Slug,
		Summary:        raw.Summary,
		ArtworkURLs:    imageURLs(artworkSize, raw.Artworks),
		ScreenshotURLs: imageURLs(screenshotSize, raw.Screenshots),
		Genres:         names(raw.Genres),
		Platforms:      names(raw.Platforms),
	}

	if raw.Cover != nil && raw.Cover.ImageID != "" {
		cover := imageURL(coverSize, raw.Cover.ImageID)
		game.CoverURL = &cover
	}

	if raw.FirstReleaseDate != nil {
		released := time.Unix(*raw.FirstReleaseDate, 0).UTC().Format(time.RFC3339)
		game.FirstReleaseDate = &released
	}

	switch {
	case raw.TotalRating != nil:
		rating := *raw.TotalRating
		game.Rating = &rating
	case raw.AggregatedRating != nil:
		rating := *raw.AggregatedRating
		game.Rating = &rating
	}

	for _, v := range raw.Videos {
		if v.VideoID != "" {
			game.Videos = append(game.Videos, entity.Video{VideoID: v.VideoID, Name: v.Name})
		}
	}

	return game
}

func normalizeAll(raws []rawGame) []entity.Game {
	games := make([]entity.Game, 0, len(raws))
	for _, raw := range raws {
		games = append(games, normalizeGame(raw))
	}
	return games
}
