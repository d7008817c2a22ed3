package handler

import (
	"github.com/labstack/echo/v4"

	"sweaty/internal/adapter/api/middleware"
	"sweaty/internal/usecase"
	"sweaty/pkg/logger"
	"sweaty/pkg/response"
)

type AdminHandler struct {
	curatedCacheUseCase *usecase.CuratedCacheUseCase
}

func NewAdminHandler(curatedCacheUseCase *usecase.CuratedCacheUseCase) *AdminHandler {
	if curatedCacheUseCase == nil {
		return nil
	}
	return &AdminHandler{
		curatedCacheUseCase: curatedCacheUseCase,
	}
}

func (h *AdminHandler) CacheCuratedGames(c echo.Context) error {
	if identity, ok := middleware.IdentityFrom(c); ok {
		logger.Info("Curated cache run requested by %s", identity.UID)
	}

	report, err := h.curatedCacheUseCase.CacheCuratedGames(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, report)
}
