package usecase

import (
	"context"
	"fmt"

	"sweaty/internal/domain/entity"
	"sweaty/internal/domain/repository"
	"sweaty/pkg/logger"
)

type CuratedCacheUseCase struct {
	cacheRepo repository.GameCacheRepository
	catalog   GameCatalog
}

func NewCuratedCacheUseCase(cacheRepo repository.GameCacheRepository, catalog GameCatalog) *CuratedCacheUseCase {
	return &CuratedCacheUseCase{
		cacheRepo: cacheRepo,
		catalog:   catalog,
	}
}

// CacheCuratedGames copies every curated game that is not cached yet from the
// catalog into the game cache.
func (uc *CuratedCacheUseCase) CacheCuratedGames(ctx context.Context) (*entity.CacheReport, error) {
	curated, err := uc.cacheRepo.ListCurated(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(curated))
	seen := make(map[int]bool, len(curated))
	for _, c := range curated {
		if c.IGDBID <= 0 || seen[c.IGDBID] {
			continue
		}
		seen[c.IGDBID] = true
		ids = append(ids, c.IGDBID)
	}

	report := &entity.CacheReport{Total: len(ids)}
	if len(ids) == 0 {
		report.Message = "No curated games to cache"
		return report, nil
	}

	existing, err := uc.cacheRepo.ExistingIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	missing := make([]int, 0, len(ids))
	for _, id := range ids {
		if !existing[id] {
			missing = append(missing, id)
		}
	}
	report.AlreadyCached = len(ids) - len(missing)

	if len(missing) == 0 {
		report.Message = "All curated games are already cached"
		return report, nil
	}

	games := uc.catalog.GetGamesByIDs(ctx, missing)
	if len(games) > 0 {
		if err := uc.cacheRepo.SaveGames(ctx, games); err != nil {
			return nil, err
		}
	}

	report.Cached = len(games)
	report.NotFound = len(missing) - len(games)
	if report.NotFound < 0 {
		report.NotFound = 0
	}
	report.Message = fmt.Sprintf("Cached %d of %d curated games", report.Cached, len(missing))

	logger.Info("Curated cache run: total=%d cached=%d already=%d notFound=%d",
		report.Total, report.Cached, report.AlreadyCached, report.NotFound)

	return report, nil
}
