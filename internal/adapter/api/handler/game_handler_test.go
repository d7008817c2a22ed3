package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweaty/internal/domain/entity"
	"sweaty/internal/usecase"
	"sweaty/pkg/errors"
	"sweaty/pkg/response"
)

type stubCatalog struct {
	calls     int
	games     []entity.Game
	byID      map[int]entity.Game
	browseErr error
	lastLimit int
	filters   entity.BrowseFilters
}

func (s *stubCatalog) SearchGames(ctx context.Context, query string, limit int) ([]entity.Game, error) {
	s.calls++
	s.lastLimit = limit
	return s.games, nil
}

func (s *stubCatalog) GetGameByID(ctx context.Context, id int) (*entity.Game, error) {
	s.calls++
	if game, ok := s.byID[id]; ok {
		return &game, nil
	}
	return nil, nil
}

func (s *stubCatalog) GetGamesByIDs(ctx context.Context, ids []int) []entity.Game {
	s.calls++
	return []entity.Game{}
}

func (s *stubCatalog) GetPopularGames(ctx context.Context, limit int) ([]entity.Game, error) {
	s.calls++
	s.lastLimit = limit
	return s.games, nil
}

func (s *stubCatalog) GetRecentGames(ctx context.Context, limit, monthsBack int) ([]entity.Game, error) {
	s.calls++
	return s.games, nil
}

func (s *stubCatalog) BrowseGames(ctx context.Context, filters entity.BrowseFilters) (*entity.BrowseResult, error) {
	s.calls++
	s.filters = filters
	if s.browseErr != nil {
		return nil, s.browseErr
	}
	return &entity.BrowseResult{Games: s.games, Count: len(s.games), Offset: filters.Offset}, nil
}

func newGameContext(t *testing.T, path string, query url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	target := path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSearchGames_InvalidLimitMakesNoUpstreamCall(t *testing.T) {
	for _, limit := range []string{"0", "51", "-3", "ten", "1.5"} {
		t.Run(limit, func(t *testing.T) {
			catalog := &stubCatalog{}
			h := NewGameHandler(usecase.NewGameUseCase(catalog))

			c, rec := newGameContext(t, "/api/games/search", url.Values{"q": {"zelda"}, "limit": {limit}})
			require.NoError(t, h.SearchGames(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, errors.CodeValidation, decodeError(t, rec).Code)
			assert.Zero(t, catalog.calls)
		})
	}
}

func TestSearchGames_MissingQuery(t *testing.T) {
	catalog := &stubCatalog{}
	h := NewGameHandler(usecase.NewGameUseCase(catalog))

	c, rec := newGameContext(t, "/api/games/search", url.Values{"q": {"   "}})
	require.NoError(t, h.SearchGames(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, catalog.calls)
}

func TestSearchGames_DefaultLimitAndBody(t *testing.T) {
	catalog := &stubCatalog{games: []entity.Game{{ID: 7346, Name: "The Legend of Zelda: Breath of the Wild"}}}
	h := NewGameHandler(usecase.NewGameUseCase(catalog))

	c, rec := newGameContext(t, "/api/games/search", url.Values{"q": {"zelda"}})
	require.NoError(t, h.SearchGames(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 20, catalog.lastLimit)

	var body struct {
		Games []entity.Game `json:"games"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Games, 1)
	assert.Equal(t, 7346, body.Games[0].ID)
}

func TestGetGame(t *testing.T) {
	catalog := &stubCatalog{byID: map[int]entity.Game{1942: {ID: 1942, Name: "The Witcher 3: Wild Hunt"}}}
	h := NewGameHandler(usecase.NewGameUseCase(catalog))

	tests := []struct {
		id   string
		code int
	}{
		{"1942", http.StatusOK},
		{"99999999", http.StatusNotFound},
		{"abc", http.StatusBadRequest},
		{"0", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			c, rec := newGameContext(t, "/api/games/"+tt.id, nil)
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			require.NoError(t, h.GetGame(c))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestGetGame_DetailShape(t *testing.T) {
	catalog := &stubCatalog{byID: map[int]entity.Game{1942: {ID: 1942, Name: "The Witcher 3: Wild Hunt"}}}
	h := NewGameHandler(usecase.NewGameUseCase(catalog))

	c, rec := newGameContext(t, "/api/games/1942", nil)
	c.SetParamNames("id")
	c.SetParamValues("1942")
	require.NoError(t, h.GetGame(c))

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "game")
	assert.JSONEq(t, "[]", string(body["artworkUrls"]))
	assert.JSONEq(t, "[]", string(body["screenshotUrls"]))
}

func TestBrowseGames_ParsesFilters(t *testing.T) {
	catalog := &stubCatalog{games: []entity.Game{}}
	h := NewGameHandler(usecase.NewGameUseCase(catalog))

	c, rec := newGameContext(t, "/api/games/browse", url.Values{
		"genres":    {"rpg, horror,"},
		"years":     {"2010s"},
		"platforms": {"ps5"},
		"offset":    {"40"},
		"limit":     {"120"},
	})
	require.NoError(t, h.BrowseGames(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"rpg", "horror"}, catalog.filters.Genres)
	assert.Equal(t, []string{"2010s"}, catalog.filters.Years)
	assert.Equal(t, []string{"ps5"}, catalog.filters.Platforms)
	assert.Equal(t, 40, catalog.filters.Offset)
	assert.Equal(t, 120, catalog.filters.Limit)
}

func TestBrowseGames_InvalidPaginationMakesNoUpstreamCall(t *testing.T) {
	for _, query := range []url.Values{
		{"limit": {"501"}},
		{"limit": {"0"}},
		{"offset": {"-1"}},
	} {
		t.Run(query.Encode(), func(t *testing.T) {
			catalog := &stubCatalog{}
			h := NewGameHandler(usecase.NewGameUseCase(catalog))

			c, rec := newGameContext(t, "/api/games/browse", query)
			require.NoError(t, h.BrowseGames(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, errors.CodeValidation, decodeError(t, rec).Code)
			assert.Zero(t, catalog.calls)
		})
	}
}

func TestBrowseGames_QueryErrorDegrades(t *testing.T) {
	catalog := &stubCatalog{browseErr: errors.CatalogQuery("IGDB rejected the query", nil)}
	h := NewGameHandler(usecase.NewGameUseCase(catalog))

	c, rec := newGameContext(t, "/api/games/browse", nil)
	require.NoError(t, h.BrowseGames(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []interface{}{}, body["games"])
	assert.NotEmpty(t, body["error"])
}

func TestBrowseGames_CatalogErrorFails(t *testing.T) {
	catalog := &stubCatalog{browseErr: errors.Catalog("IGDB request failed", nil)}
	h := NewGameHandler(usecase.NewGameUseCase(catalog))

	c, rec := newGameContext(t, "/api/games/browse", nil)
	require.NoError(t, h.BrowseGames(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, errors.CodeCatalog, decodeError(t, rec).Code)
}

func TestGetPopularGames_InvalidLimit(t *testing.T) {
	catalog := &stubCatalog{}
	h := NewGameHandler(usecase.NewGameUseCase(catalog))

	c, rec := newGameContext(t, "/api/popular-games", url.Values{"limit": {"100"}})
	require.NoError(t, h.GetPopularGames(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, catalog.calls)
}
