package igdb

import (
	"context"
	"fmt"
	"time"

	"sweaty/internal/domain/entity"
	"sweaty/internal/infrastructure/metrics"
	"sweaty/internal/usecase"
	"sweaty/pkg/logger"
)

const gamesEndpoint = "games"

var _ usecase.GameCatalog = (*Client)(nil)

const (
	popularMinRatingCount = 100
	recentMinRatingCount  = 5
)

func (c *Client) fetch(ctx context.Context, q apicalypse) ([]entity.Game, error) {
	var raws []rawGame
	if err := c.query(ctx, gamesEndpoint, q.String(), &raws); err != nil {
		return nil, err
	}
	return normalizeAll(raws), nil
}

// SearchGames runs a free-text search, best match first.
func (c *Client) SearchGames(ctx context.Context, query string, limit int) ([]entity.Game, error) {
	if limit < 1 {
		return []entity.Game{}, nil
	}

	games, err := c.fetch(ctx, apicalypse{
		search: query,
		fields: listFields,
		limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	if len(games) > limit {
		games = games[:limit]
	}
	return games, nil
}

// GetGameByID fetches the detail field set. A missing game is (nil, nil).
func (c *Client) GetGameByID(ctx context.Context, id int) (*entity.Game, error) {
	games, err := c.fetch(ctx, apicalypse{
		fields: detailFields,
		where:  []string{fmt.Sprintf("id = %d", id)},
		limit:  1,
	})
	if err != nil {
		return nil, err
	}

	if len(games) == 0 {
		return nil, nil
	}
	return &games[0], nil
}

// GetGamesByIDs resolves ids in sequential batches with a pause between
// batches. A failed batch is logged and skipped; the rest is still returned.
// The pause is per call, so concurrent callers can exceed the catalog rate.
func (c *Client) GetGamesByIDs(ctx context.Context, ids []int) []entity.Game {
	games := make([]entity.Game, 0, len(ids))

	for start, batchNo := 0, 1; start < len(ids); start, batchNo = start+c.batchSize, batchNo+1 {
		if start > 0 {
			select {
			case <-ctx.Done():
				logger.Event("igdb.batch_cancelled").Int("resolved", len(games)).Err(ctx.Err()).Msg("batched lookup cancelled")
				return games
			case <-time.After(c.batchDelay):
			}
		}

		end := start + c.batchSize
		if end > len(ids) {
			end = len(ids)
		}
		batch := ids[start:end]

		found, err := c.fetch(ctx, apicalypse{
			fields: listFields,
			where:  []string{"id = " + idList(batch)},
			limit:  len(batch),
		})
		if err != nil {
			metrics.CatalogBatchFailures.Inc()
			logger.Event("igdb.batch_failed").
				Int("batch", batchNo).
				Int("size", len(batch)).
				Err(err).
				Msg("batched lookup failed, skipping batch")
			continue
		}

		games = append(games, found...)
	}

	return games
}

// GetPopularGames lists well-known main games by rating count.
func (c *Client) GetPopularGames(ctx context.Context, limit int) ([]entity.Game, error) {
	return c.fetch(ctx, apicalypse{
		fields: listFields,
		where: []string{
			"cover != null",
			"version_parent = null",
			"category = " + mainGameCategories,
			fmt.Sprintf("total_rating_count > %d", popularMinRatingCount),
		},
		sort:  "total_rating_count desc",
		limit: limit,
	})
}

// GetRecentGames lists main games released in the last monthsBack months,
// best rated first.
func (c *Client) GetRecentGames(ctx context.Context, limit, monthsBack int) ([]entity.Game, error) {
	now := c.clock.Now().UTC()
	since := now.AddDate(0, -monthsBack, 0)

	return c.fetch(ctx, apicalypse{
		fields: listFields,
		where: []string{
			fmt.Sprintf("first_release_date >= %d", since.Unix()),
			fmt.Sprintf("first_release_date <= %d", now.Unix()),
			"cover != null",
			"version_parent = null",
			"category = " + mainGameCategories,
			fmt.Sprintf("total_rating_count >= %d", recentMinRatingCount),
		},
		sort:  "total_rating desc",
		limit: limit,
	})
}

// BrowseGames applies genre/theme/platform/year facets with offset paging.
func (c *Client) BrowseGames(ctx context.Context, filters entity.BrowseFilters) (*entity.BrowseResult, error) {
	games, err := c.fetch(ctx, apicalypse{
		fields: listFields,
		where:  browseConditions(filters),
		sort:   "total_rating_count desc",
		limit:  filters.Limit,
		offset: filters.Offset,
	})
	if err != nil {
		return nil, err
	}

	return &entity.BrowseResult{
		Games:   games,
		Count:   len(games),
		Offset:  filters.Offset,
		HasMore: len(games) == filters.Limit,
	}, nil
}
