package terminal

import (
	"context"
	"strconv"
	"strings"

	"github.com/KirkDiggler/thousand/internal/models"
)

// askPlayerCount repeats the question until it gets a number in range
func (s *Session) askPlayerCount(ctx context.Context) (int, error) {
	for {
		answer, err := s.ask(ctx, "setup.player_count", models.MinPlayers, models.MaxPlayers)
		if err != nil {
			return 0, err
		}

		count, err := strconv.Atoi(answer)
		if err != nil {
			s.logger.Debug("rejected player count", "input", answer)
			s.say("setup.player_count_number")
			continue
		}

		if count < models.MinPlayers || count > models.MaxPlayers {
			s.logger.Debug("rejected player count", "count", count)
			s.say("setup.player_count_range", models.MinPlayers, models.MaxPlayers)
			continue
		}

		return count, nil
	}
}

// askYesNo repeats the question until the answer is one of the catalog's yes or no words
func (s *Session) askYesNo(ctx context.Context, key string, args ...any) (bool, error) {
	for {
		answer, err := s.ask(ctx, key, args...)
		if err != nil {
			return false, err
		}

		answer = strings.ToLower(answer)
		if contains(s.yes, answer) {
			return true, nil
		}
		if contains(s.no, answer) {
			return false, nil
		}

		s.say("roll.answer_invalid")
	}
}

func contains(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}
