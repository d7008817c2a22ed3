package handler

import (
	"sweaty/internal/usecase"
)

var (
	gameHandler           *GameHandler
	recommendationHandler *RecommendationHandler
	adminHandler          *AdminHandler
)

func Setup(
	gameUseCase *usecase.GameUseCase,
	recommendationUseCase *usecase.RecommendationUseCase,
	curatedCacheUseCase *usecase.CuratedCacheUseCase,
) {
	gameHandler = NewGameHandler(gameUseCase)
	recommendationHandler = NewRecommendationHandler(recommendationUseCase)
	adminHandler = NewAdminHandler(curatedCacheUseCase)
}

func GetGameHandler() *GameHandler {
	return gameHandler
}

func GetRecommendationHandler() *RecommendationHandler {
	return recommendationHandler
}

// GetAdminHandler is nil when the game cache is not configured.
func GetAdminHandler() *AdminHandler {
	return adminHandler
}
