package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"sweaty/internal/domain/entity"
)

type fakeCatalog struct {
	mu sync.Mutex

	byTitle   map[string]entity.Game
	searchErr map[string]error
	recent    []entity.Game
	recentErr error
	byID      map[int]entity.Game
	delays    map[string]time.Duration

	searches    []string
	finished    []string
	recentCalls int
	idCalls     [][]int
}

func (f *fakeCatalog) SearchGames(ctx context.Context, query string, limit int) ([]entity.Game, error) {
	f.mu.Lock()
	f.searches = append(f.searches, query)
	delay := f.delays[strings.ToLower(query)]
	f.mu.Unlock()

	time.Sleep(delay)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.finished = append(f.finished, strings.ToLower(query))

	if err := f.searchErr[strings.ToLower(query)]; err != nil {
		return nil, err
	}
	if game, ok := f.byTitle[strings.ToLower(query)]; ok {
		return []entity.Game{game}, nil
	}
	return []entity.Game{}, nil
}

func (f *fakeCatalog) GetGameByID(ctx context.Context, id int) (*entity.Game, error) {
	if game, ok := f.byID[id]; ok {
		return &game, nil
	}
	return nil, nil
}

func (f *fakeCatalog) GetGamesByIDs(ctx context.Context, ids []int) []entity.Game {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.idCalls = append(f.idCalls, ids)

	games := []entity.Game{}
	for _, id := range ids {
		if game, ok := f.byID[id]; ok {
			games = append(games, game)
		}
	}
	return games
}

func (f *fakeCatalog) GetPopularGames(ctx context.Context, limit int) ([]entity.Game, error) {
	return []entity.Game{}, nil
}

func (f *fakeCatalog) GetRecentGames(ctx context.Context, limit, monthsBack int) ([]entity.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recentCalls++
	return f.recent, f.recentErr
}

func (f *fakeCatalog) BrowseGames(ctx context.Context, filters entity.BrowseFilters) (*entity.BrowseResult, error) {
	return &entity.BrowseResult{Games: []entity.Game{}, Offset: filters.Offset}, nil
}

func (f *fakeCatalog) searched() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.searches...)
}

func (f *fakeCatalog) finishOrder() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.finished...)
}

type fakeCompletion struct {
	reply string
	err   error

	requests []CompletionRequest
}

func (f *fakeCompletion) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	f.requests = append(f.requests, req)
	return f.reply, f.err
}

type fakeCacheRepo struct {
	curated  []entity.CuratedGame
	existing map[int]bool
	listErr  error
	saveErr  error

	saved []entity.Game
}

func (f *fakeCacheRepo) ListCurated(ctx context.Context) ([]entity.CuratedGame, error) {
	return f.curated, f.listErr
}

func (f *fakeCacheRepo) ExistingIDs(ctx context.Context, ids []int) (map[int]bool, error) {
	out := make(map[int]bool)
	for _, id := range ids {
		if f.existing[id] {
			out[id] = true
		}
	}
	return out, nil
}

func (f *fakeCacheRepo) SaveGames(ctx context.Context, games []entity.Game) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, games...)
	return nil
}

func game(id int, name string) entity.Game {
	return entity.Game{ID: id, Name: name, Genres: []string{}, Platforms: []string{}}
}
