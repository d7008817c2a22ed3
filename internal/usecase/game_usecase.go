package usecase

import (
	"context"

	"sweaty/internal/domain/entity"
	"sweaty/pkg/errors"
)

type GameUseCase struct {
	catalog GameCatalog
}

func NewGameUseCase(catalog GameCatalog) *GameUseCase {
	return &GameUseCase{
		catalog: catalog,
	}
}

// GameDetail is the detail-page payload; the image lists are lifted out of
// the game for poster customization.
type GameDetail struct {
	Game           *entity.Game `json:"game"`
	ArtworkURLs    []string     `json:"artworkUrls"`
	ScreenshotURLs []string     `json:"screenshotUrls"`
}

func (uc *GameUseCase) SearchGames(ctx context.Context, query string, limit int) ([]entity.Game, error) {
	return uc.catalog.SearchGames(ctx, query, limit)
}

func (uc *GameUseCase) GetGameDetail(ctx context.Context, id int) (*GameDetail, error) {
	game, err := uc.catalog.GetGameByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, errors.NotFound("Game", nil)
	}

	detail := &GameDetail{
		Game:           game,
		ArtworkURLs:    game.ArtworkURLs,
		ScreenshotURLs: game.ScreenshotURLs,
	}
	if detail.ArtworkURLs == nil {
		detail.ArtworkURLs = []string{}
	}
	if detail.ScreenshotURLs == nil {
		detail.ScreenshotURLs = []string{}
	}

	return detail, nil
}

func (uc *GameUseCase) BrowseGames(ctx context.Context, filters entity.BrowseFilters) (*entity.BrowseResult, error) {
	return uc.catalog.BrowseGames(ctx, filters)
}

func (uc *GameUseCase) GetPopularGames(ctx context.Context, limit int) ([]entity.Game, error) {
	return uc.catalog.GetPopularGames(ctx, limit)
}
