package repository

import (
	"context"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"sweaty/internal/domain/entity"
	"sweaty/internal/domain/repository"
	"sweaty/pkg/errors"
)

const (
	curatedGamesCollection = "curated_games"
	gamesCollection        = "games"

	// Firestore caps a write batch at 500 operations.
	maxBatchWrites = 500
	maxBatchReads  = 100
)

type firestoreGameCacheRepository struct {
	client *firestore.Client
	now    func() time.Time
}

func NewFirestoreGameCacheRepository(client *firestore.Client) repository.GameCacheRepository {
	return &firestoreGameCacheRepository{
		client: client,
		now:    time.Now,
	}
}

func (r *firestoreGameCacheRepository) ListCurated(ctx context.Context) ([]entity.CuratedGame, error) {
	iter := r.client.Collection(curatedGamesCollection).Documents(ctx)
	defer iter.Stop()

	var curated []entity.CuratedGame
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list curated games", err)
		}

		var game entity.CuratedGame
		if err := doc.DataTo(&game); err != nil {
			return nil, errors.Internal("Failed to parse curated game data", err)
		}
		curated = append(curated, game)
	}

	return curated, nil
}

func (r *firestoreGameCacheRepository) ExistingIDs(ctx context.Context, ids []int) (map[int]bool, error) {
	existing := make(map[int]bool, len(ids))

	for start := 0; start < len(ids); start += maxBatchReads {
		end := start + maxBatchReads
		if end > len(ids) {
			end = len(ids)
		}

		docRefs := make([]*firestore.DocumentRef, 0, end-start)
		for _, id := range ids[start:end] {
			docRefs = append(docRefs, r.gameDoc(id))
		}

		snapshots, err := r.client.GetAll(ctx, docRefs)
		if err != nil {
			return nil, errors.Internal("Failed to check cached games", err)
		}

		for i, snap := range snapshots {
			if snap.Exists() {
				existing[ids[start+i]] = true
			}
		}
	}

	return existing, nil
}

func (r *firestoreGameCacheRepository) SaveGames(ctx context.Context, games []entity.Game) error {
	cachedAt := r.now()

	for start := 0; start < len(games); start += maxBatchWrites {
		end := start + maxBatchWrites
		if end > len(games) {
			end = len(games)
		}

		batch := r.client.Batch()
		for _, game := range games[start:end] {
			batch.Set(r.gameDoc(game.ID), entity.CachedGame{
				Game:     game,
				CachedAt: cachedAt,
			})
		}

		if _, err := batch.Commit(ctx); err != nil {
			return errors.Internal("Failed to save cached games", err)
		}
	}

	return nil
}

func (r *firestoreGameCacheRepository) gameDoc(id int) *firestore.DocumentRef {
	return r.client.Collection(gamesCollection).Doc(strconv.Itoa(id))
}
