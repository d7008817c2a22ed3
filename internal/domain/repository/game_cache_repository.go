package repository

import (
	"context"

	"sweaty/internal/domain/entity"
)

type GameCacheRepository interface {
	ListCurated(ctx context.Context) ([]entity.CuratedGame, error)
	ExistingIDs(ctx context.Context, ids []int) (map[int]bool, error)
	SaveGames(ctx context.Context, games []entity.Game) error
}
