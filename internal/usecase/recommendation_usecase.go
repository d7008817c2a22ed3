package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"sweaty/internal/domain/entity"
	"sweaty/internal/infrastructure/metrics"
	"sweaty/pkg/errors"
	"sweaty/pkg/logger"
)

const (
	maxSuggestedGames     = 8
	groundingLimit        = 50
	groundingMonthsBack   = 24
	completionTemperature = 0.7
	completionMaxTokens   = 1024

	parseFailureNotice = "Failed to parse AI response"
)

// RecencyDetector decides whether a conversation asks for recent releases.
type RecencyDetector func(messages []entity.ChatMessage) bool

var recencyKeywords = []string{
	"recent",
	"new",
	"latest",
	"this year",
	"last year",
	"upcoming",
	"just released",
	"just came out",
}

// KeywordRecencyDetector looks for recency keywords, or the current or
// previous calendar year, in the last user message only.
func KeywordRecencyDetector(messages []entity.ChatMessage) bool {
	return NewKeywordRecencyDetector(time.Now)(messages)
}

// NewKeywordRecencyDetector builds the keyword detector against now, which
// supplies the years that count as recent.
func NewKeywordRecencyDetector(now func() time.Time) RecencyDetector {
	return func(messages []entity.ChatMessage) bool {
		for i := len(messages) - 1; i >= 0; i-- {
			if messages[i].Role != entity.RoleUser {
				continue
			}
			content := strings.ToLower(messages[i].Content)
			for _, keyword := range recencyKeywords {
				if strings.Contains(content, keyword) {
					return true
				}
			}
			year := now().Year()
			return strings.Contains(content, strconv.Itoa(year)) || strings.Contains(content, strconv.Itoa(year-1))
		}
		return false
	}
}

type RecommendationUseCase struct {
	catalog       GameCatalog
	completion    CompletionClient
	detectRecency RecencyDetector
}

// NewRecommendationUseCase accepts a nil completion client; Recommend then
// fails with a configuration error.
func NewRecommendationUseCase(catalog GameCatalog, completion CompletionClient) *RecommendationUseCase {
	return &RecommendationUseCase{
		catalog:       catalog,
		completion:    completion,
		detectRecency: KeywordRecencyDetector,
	}
}

func (uc *RecommendationUseCase) SetRecencyDetector(detector RecencyDetector) {
	if detector != nil {
		uc.detectRecency = detector
	}
}

func (uc *RecommendationUseCase) Recommend(ctx context.Context, messages []entity.ChatMessage) (*entity.Recommendation, error) {
	if uc.completion == nil {
		return nil, errors.Configuration("ANTHROPIC_API_KEY is not configured")
	}

	var grounding []entity.Game
	if uc.detectRecency(messages) {
		recent, err := uc.catalog.GetRecentGames(ctx, groundingLimit, groundingMonthsBack)
		switch {
		case err != nil:
			metrics.GroundingFallbacks.Inc()
			logger.Event("recommend.grounding_failed").Err(err).Msg("recent games unavailable, using ungrounded prompt")
		case len(recent) == 0:
			metrics.GroundingFallbacks.Inc()
			logger.Event("recommend.grounding_empty").Msg("no recent games returned, using ungrounded prompt")
		default:
			grounding = recent
		}
	}

	text, err := uc.completion.Complete(ctx, CompletionRequest{
		System:      buildSystemPrompt(grounding),
		Messages:    messages,
		Temperature: completionTemperature,
		MaxTokens:   completionMaxTokens,
	})
	if err != nil {
		if !errors.IsAppError(err) {
			err = errors.CompletionService("AI service request failed", err)
		}
		return nil, err
	}

	reply, err := parseModelReply(text)
	if err != nil {
		metrics.RecommendationParseFailures.Inc()
		logger.Event("recommend.parse_failed").
			Err(err).
			Str("reply", logger.Truncate(text, 256)).
			Msg("model reply was not valid JSON")
		return &entity.Recommendation{
			Message: text,
			Games:   []entity.Game{},
			Error:   parseFailureNotice,
		}, nil
	}

	return &entity.Recommendation{
		Message: reply.Message,
		Games:   uc.resolveTitles(ctx, reply.Games, grounding),
	}, nil
}

// resolveTitles maps suggested titles to catalog games. Grounding matches are
// taken first; the rest are searched concurrently. Output keeps suggestion
// order, drops misses and collapses duplicate ids.
func (uc *RecommendationUseCase) resolveTitles(ctx context.Context, titles []string, grounding []entity.Game) []entity.Game {
	if len(titles) > maxSuggestedGames {
		titles = titles[:maxSuggestedGames]
	}

	known := make(map[string]entity.Game, len(grounding))
	for _, game := range grounding {
		key := normalizeTitle(game.Name)
		if _, ok := known[key]; !ok {
			known[key] = game
		}
	}

	resolved := make([]*entity.Game, len(titles))
	var g errgroup.Group

	for i, title := range titles {
		key := normalizeTitle(title)
		if key == "" {
			continue
		}
		if game, ok := known[key]; ok {
			metrics.TitleResolutions.WithLabelValues("grounding").Inc()
			resolved[i] = &game
			continue
		}

		i, title := i, strings.TrimSpace(title)
		g.Go(func() error {
			found, err := uc.catalog.SearchGames(ctx, title, 1)
			if err != nil {
				metrics.TitleResolutions.WithLabelValues("miss").Inc()
				logger.Event("recommend.title_lookup_failed").Str("title", title).Err(err).Msg("title lookup failed")
				return nil
			}
			if len(found) == 0 {
				metrics.TitleResolutions.WithLabelValues("miss").Inc()
				return nil
			}
			metrics.TitleResolutions.WithLabelValues("search").Inc()
			resolved[i] = &found[0]
			return nil
		})
	}
	_ = g.Wait()

	games := make([]entity.Game, 0, len(titles))
	seen := make(map[int]bool, len(titles))
	for _, game := range resolved {
		if game == nil || seen[game.ID] {
			continue
		}
		seen[game.ID] = true
		games = append(games, *game)
	}

	return games
}

func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
