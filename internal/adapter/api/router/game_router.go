package router

import (
	"github.com/labstack/echo/v4"

	"sweaty/internal/adapter/api/handler"
)

func SetupGameRouter(e *echo.Echo) {
	gameHandler := handler.GetGameHandler()

	games := e.Group("/api/games")
	games.GET("/search", gameHandler.SearchGames)
	games.GET("/browse", gameHandler.BrowseGames)
	games.GET("/:id", gameHandler.GetGame)

	e.GET("/api/popular-games", gameHandler.GetPopularGames)
}
