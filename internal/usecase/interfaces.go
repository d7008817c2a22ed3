package usecase

import (
	"context"

	"sweaty/internal/domain/entity"
)

// GameCatalog is the catalog façade as seen by use cases.
type GameCatalog interface {
	SearchGames(ctx context.Context, query string, limit int) ([]entity.Game, error)
	GetGameByID(ctx context.Context, id int) (*entity.Game, error)
	GetGamesByIDs(ctx context.Context, ids []int) []entity.Game
	GetPopularGames(ctx context.Context, limit int) ([]entity.Game, error)
	GetRecentGames(ctx context.Context, limit, monthsBack int) ([]entity.Game, error)
	BrowseGames(ctx context.Context, filters entity.BrowseFilters) (*entity.BrowseResult, error)
}

type CompletionRequest struct {
	System      string
	Messages    []entity.ChatMessage
	Temperature float64
	MaxTokens   int
}

type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
