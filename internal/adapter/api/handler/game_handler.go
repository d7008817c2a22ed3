package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"sweaty/internal/domain/entity"
	"sweaty/internal/usecase"
	"sweaty/pkg/errors"
	"sweaty/pkg/response"
	"sweaty/pkg/utils"
)

type GameHandler struct {
	gameUseCase *usecase.GameUseCase
}

func NewGameHandler(gameUseCase *usecase.GameUseCase) *GameHandler {
	return &GameHandler{
		gameUseCase: gameUseCase,
	}
}

type gamesResponse struct {
	Games []entity.Game `json:"games"`
}

func (h *GameHandler) SearchGames(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return response.Error(c, errors.Validation("q is required"))
	}

	limit, err := utils.ParseLimit(c)
	if err != nil {
		return response.Error(c, err)
	}

	games, err := h.gameUseCase.SearchGames(c.Request().Context(), query, limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, gamesResponse{Games: games})
}

func (h *GameHandler) GetGame(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return response.Error(c, errors.Validation("id must be a positive integer"))
	}

	detail, err := h.gameUseCase.GetGameDetail(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, detail)
}

func (h *GameHandler) BrowseGames(c echo.Context) error {
	pagination, err := utils.GetPaginationParams(c)
	if err != nil {
		return response.Error(c, err)
	}

	filters := entity.BrowseFilters{
		Genres:    utils.SplitList(c.QueryParam("genres")),
		Themes:    utils.SplitList(c.QueryParam("themes")),
		Platforms: utils.SplitList(c.QueryParam("platforms")),
		Years:     utils.SplitList(c.QueryParam("years")),
		Offset:    pagination.Offset,
		Limit:     pagination.Limit,
	}

	result, err := h.gameUseCase.BrowseGames(c.Request().Context(), filters)
	if err != nil {
		// A rejected filter query still renders an empty page.
		if errors.Is(err, errors.CodeCatalogQuery) {
			return c.JSON(http.StatusOK, map[string]interface{}{
				"games":   []entity.Game{},
				"count":   0,
				"offset":  filters.Offset,
				"hasMore": false,
				"error":   "Invalid filter combination",
			})
		}
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *GameHandler) GetPopularGames(c echo.Context) error {
	limit, err := utils.ParseLimit(c)
	if err != nil {
		return response.Error(c, err)
	}

	games, err := h.gameUseCase.GetPopularGames(c.Request().Context(), limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, gamesResponse{Games: games})
}
