package handler

import (
	"github.com/labstack/echo/v4"

	"sweaty/internal/domain/entity"
	"sweaty/internal/usecase"
	"sweaty/pkg/response"
)

type RecommendationHandler struct {
	recommendationUseCase *usecase.RecommendationUseCase
}

func NewRecommendationHandler(recommendationUseCase *usecase.RecommendationUseCase) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationUseCase: recommendationUseCase,
	}
}

type chatMessageRequest struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type recommendRequest struct {
	Messages []chatMessageRequest `json:"messages" validate:"required,min=1,dive"`
}

func (h *RecommendationHandler) Recommend(c echo.Context) error {
	var req recommendRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	messages := make([]entity.ChatMessage, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = entity.ChatMessage{
			Role:    m.Role,
			Content: m.Content,
		}
	}

	recommendation, err := h.recommendationUseCase.Recommend(c.Request().Context(), messages)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, recommendation)
}
