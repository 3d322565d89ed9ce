// Package terminal is an interactive text front end for the game.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/text/message"

	"github.com/KirkDiggler/thousand/internal/animation"
	"github.com/KirkDiggler/thousand/internal/i18n"
	"github.com/KirkDiggler/thousand/internal/models"
	"github.com/KirkDiggler/thousand/internal/services/game"
)

// ErrInputClosed is returned when the player input ends before the game does
var ErrInputClosed = errors.New("input closed")

// Animator plays the rolling effect and returns once it has finished
type Animator interface {
	Run(ctx context.Context, onFrame animation.FrameFunc) error
}

// FrameRenderer paints the dice somewhere other than the terminal
type FrameRenderer interface {
	Render(faces []int) error
}

// Config holds the configuration for a terminal session
type Config struct {
	In  io.Reader
	Out io.Writer

	// Game service
	GameService game.Service

	// Animator runs before every roll is scored
	Animator Animator

	// Bundle and Locale select the strings shown to players
	Bundle *i18n.Bundle
	Locale string

	// Renderer is optional
	Renderer FrameRenderer

	// MissingImages names face images the renderer could not load
	MissingImages []string

	Logger *slog.Logger
}

// inputLine is one line read from the player, or the error that ended the input
type inputLine struct {
	text string
	err  error
}

// Session drives one game from setup to winner over a reader and writer
type Session struct {
	in          *bufio.Reader
	lines       chan inputLine
	readOnce    sync.Once
	out         io.Writer
	gameService game.Service
	animator    Animator
	renderer    FrameRenderer
	missing     []string
	printer     *message.Printer
	yes         []string
	no          []string
	logger      *slog.Logger
}

// New creates a terminal session
func New(cfg *Config) (*Session, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.In == nil || cfg.Out == nil {
		return nil, errors.New("input and output cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.Animator == nil {
		return nil, errors.New("animator cannot be nil")
	}

	if cfg.Bundle == nil {
		return nil, errors.New("message bundle cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Session{
		in:          bufio.NewReader(cfg.In),
		lines:       make(chan inputLine),
		out:         cfg.Out,
		gameService: cfg.GameService,
		animator:    cfg.Animator,
		renderer:    cfg.Renderer,
		missing:     cfg.MissingImages,
		printer:     cfg.Bundle.Printer(cfg.Locale),
		yes:         cfg.Bundle.Answers(cfg.Locale, "answer.yes"),
		no:          cfg.Bundle.Answers(cfg.Locale, "answer.no"),
		logger:      logger,
	}, nil
}

// Run collects the players, plays the game to a winner and discards it.
// It returns ErrInputClosed if the input ends first.
func (s *Session) Run(ctx context.Context) error {
	if len(s.missing) > 0 {
		s.say("dice.missing_notice", strings.Join(s.missing, ", "))
	}

	names, err := s.Setup(ctx)
	if err != nil {
		return err
	}

	created, err := s.gameService.CreateGame(ctx, &game.CreateGameInput{
		PlayerNames: names,
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	gameID := created.Game.ID
	defer func() {
		// The session owns the game; nothing outlives it
		_, err := s.gameService.AbandonGame(context.WithoutCancel(ctx), &game.AbandonGameInput{GameID: gameID})
		if err != nil {
			s.logger.Warn("failed to discard game", "game_id", gameID, "error", err)
		}
	}()

	err = s.Play(ctx, gameID)
	if errors.Is(err, ErrInputClosed) || errors.Is(err, context.Canceled) {
		s.say("game.abandoned")
	}
	return err
}

// Setup asks for the number of players and their names
func (s *Session) Setup(ctx context.Context) ([]string, error) {
	count, err := s.askPlayerCount(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, count)
	for i := range names {
		name, err := s.ask(ctx, "setup.player_name", i+1)
		if err != nil {
			return nil, err
		}
		names[i] = name
	}

	return names, nil
}

// Play runs turns until someone wins
func (s *Session) Play(ctx context.Context, gameID string) error {
	for {
		current, err := s.gameService.GetGame(ctx, &game.GetGameInput{GameID: gameID})
		if err != nil {
			return err
		}

		if current.Game.Phase.IsGameOver() {
			if winner := current.Game.Winner(); winner != nil {
				s.say("game.winner", winner.Name, winner.TotalScore)
			}
			return nil
		}

		if err := s.playTurn(ctx, current.Game); err != nil {
			return err
		}
	}
}

// playTurn handles one roll and, if it scored, the decision after it
func (s *Session) playTurn(ctx context.Context, g *models.Game) error {
	player := g.ActivePlayer()
	s.say("turn.status", player.Name, player.TotalScore)

	if _, err := s.ask(ctx, "turn.roll_prompt", player.Name); err != nil {
		return err
	}

	if _, err := s.gameService.StartRoll(ctx, &game.StartRollInput{GameID: g.ID}); err != nil {
		return err
	}

	err := s.animator.Run(ctx, func(frame int, faces []int) {
		fmt.Fprint(s.out, "\r", renderFaces(faces))
		s.renderFrame(faces)
	})
	if err != nil {
		return err
	}

	rolled, err := s.gameService.CompleteRoll(ctx, &game.CompleteRollInput{GameID: g.ID})
	if err != nil {
		return err
	}

	fmt.Fprint(s.out, "\r", renderFaces(rolled.Roll), "\n")
	s.renderFrame(rolled.Roll)
	s.say("roll.result", rolled.PlayerName, rolled.Roll.String(), rolled.Score)

	if rolled.Busted {
		s.say("roll.bust", rolled.Forfeited)
		return nil
	}

	if rolled.Opened {
		s.say("roll.opened", rolled.PlayerName)
	}

	rollAgain, err := s.askYesNo(ctx, "roll.again_prompt", rolled.PlayerName, rolled.TurnScore)
	if err != nil {
		return err
	}

	decided, err := s.gameService.Decide(ctx, &game.DecideInput{GameID: g.ID, RollAgain: rollAgain})
	if err != nil {
		return err
	}

	if !rollAgain {
		s.say("turn.banked", decided.PlayerName, decided.Banked, decided.TotalScore)
	}

	return nil
}

func (s *Session) renderFrame(faces []int) {
	if s.renderer == nil {
		return
	}
	if err := s.renderer.Render(faces); err != nil {
		s.logger.Warn("failed to render frame", "error", err)
	}
}

// say prints a catalog message followed by a newline
func (s *Session) say(key string, args ...any) {
	s.printer.Fprintf(s.out, key, args...)
	fmt.Fprintln(s.out)
}

// ask prints a catalog prompt and returns the trimmed answer
func (s *Session) ask(ctx context.Context, key string, args ...any) (string, error) {
	s.printer.Fprintf(s.out, key, args...)
	return s.readLine(ctx)
}

// readLine waits for the next line of input or for ctx to end, whichever comes first
func (s *Session) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.readOnce.Do(func() { go s.readInput() })

	select {
	case <-ctx.Done():
		fmt.Fprintln(s.out)
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			return "", ErrInputClosed
		}
		if line.err != nil {
			if errors.Is(line.err, ErrInputClosed) {
				fmt.Fprintln(s.out)
			}
			return "", line.err
		}
		return line.text, nil
	}
}

// readInput feeds lines to readLine until the input ends.
// It blocks on the reader, so it outlives a cancelled session until the reader returns.
func (s *Session) readInput() {
	defer close(s.lines)

	for {
		text, err := s.in.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.lines <- inputLine{err: fmt.Errorf("read input: %w", err)}
				return
			}
			if strings.TrimSpace(text) != "" {
				s.lines <- inputLine{text: strings.TrimSpace(text)}
			}
			s.lines <- inputLine{err: ErrInputClosed}
			return
		}

		s.lines <- inputLine{text: strings.TrimSpace(text)}
	}
}
