package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"sweaty/internal/domain/entity"
)

const baseSystemPrompt = `You are the game recommendation assistant of Sweaty, a social app where players track the video games they play.
Help the user find games they will enjoy based on the whole conversation.

Reply with ONLY a JSON object in exactly this shape, with no text before or after it:
{"message": "<your conversational reply>", "games": ["<game title>", "<game title>"]}

Rules:
- Recommend between 5 and 8 games.
- Use each game's exact official title, without platform, edition or year suffixes.
- In "message", explain briefly and conversationally why the picks fit the request.
- If the request is unclear or not about video games, answer helpfully in "message", ask what they are in the mood for, and return an empty "games" array.`

// buildSystemPrompt grounds the model in candidates when there are any.
func buildSystemPrompt(candidates []entity.Game) string {
	if len(candidates) == 0 {
		return baseSystemPrompt
	}

	var b strings.Builder
	b.WriteString(baseSystemPrompt)
	b.WriteString("\n\nThe user is asking about recent releases. Choose ONLY from this list of games released in the last two years and copy the titles exactly as written:\n")
	for _, game := range candidates {
		b.WriteString("- ")
		b.WriteString(game.Name)
		if year := game.ReleaseYear(); year > 0 {
			fmt.Fprintf(&b, " (%d)", year)
		}
		genres := game.Genres
		if len(genres) > 3 {
			genres = genres[:3]
		}
		if len(genres) > 0 {
			b.WriteString(" - ")
			b.WriteString(strings.Join(genres, ", "))
		}
		b.WriteString("\n")
	}
	b.WriteString("Do not recommend any game that is not on this list.")

	return b.String()
}

type modelReply struct {
	Message string   `json:"message"`
	Games   []string `json:"games"`
}

// parseModelReply accepts the JSON reply bare or wrapped in a ``` / ```json fence.
func parseModelReply(text string) (*modelReply, error) {
	var reply modelReply
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func stripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if len(s) >= 4 && strings.EqualFold(s[:4], "json") {
		s = s[4:]
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")

	return strings.TrimSpace(s)
}
