package terminal

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/thousand/internal/animation"
	"github.com/KirkDiggler/thousand/internal/common/clock"
	"github.com/KirkDiggler/thousand/internal/dice"
	"github.com/KirkDiggler/thousand/internal/i18n"
	gameRepo "github.com/KirkDiggler/thousand/internal/repositories/game"
	"github.com/KirkDiggler/thousand/internal/services/game"
)

// scriptedRoller returns the scripted faces in order, then sixes forever
type scriptedRoller struct {
	faces []int
}

func (r *scriptedRoller) Face() int {
	if len(r.faces) == 0 {
		return 6
	}
	face := r.faces[0]
	r.faces = r.faces[1:]
	return face
}

type fixedUUID struct{}

func (fixedUUID) NewUUID() string { return "game-1" }

type countingRenderer struct {
	calls int
}

func (r *countingRenderer) Render(faces []int) error {
	r.calls++
	return nil
}

// syncBuffer lets a test read output while a session is still writing it
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type SessionTestSuite struct {
	suite.Suite
	repo     gameRepo.Repository
	roller   *scriptedRoller
	renderer *countingRenderer
	out      *bytes.Buffer
}

func (s *SessionTestSuite) SetupTest() {
	s.repo = gameRepo.NewMemory()
	s.roller = &scriptedRoller{}
	s.renderer = &countingRenderer{}
	s.out = &bytes.Buffer{}
}

func TestSessionTestSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) newSession(input, locale string) *Session {
	return s.newSessionWith(strings.NewReader(input), s.out, locale)
}

func (s *SessionTestSuite) newSessionWith(in io.Reader, out io.Writer, locale string) *Session {
	svc, err := game.New(&game.Config{
		GameRepo:      s.repo,
		DiceRoller:    s.roller,
		Clock:         clock.New(),
		UUIDGenerator: fixedUUID{},
	})
	s.Require().NoError(err)

	animator, err := animation.New(&animation.Config{
		Frames:   2,
		Interval: time.Millisecond,
		Roller:   dice.New(&dice.Config{Seed: 1}),
	})
	s.Require().NoError(err)

	bundle, err := i18n.LoadEmbedded()
	s.Require().NoError(err)

	session, err := New(&Config{
		In:          in,
		Out:         out,
		GameService: svc,
		Animator:    animator,
		Bundle:      bundle,
		Locale:      locale,
		Renderer:    s.renderer,
	})
	s.Require().NoError(err)
	return session
}

func (s *SessionTestSuite) TestFullGame() {
	// Anna busts, then Player 2 rolls sixty seventeen times and banks 1020
	s.roller.faces = []int{2, 3, 4, 6, 2}

	setup := "abc\n9\n2\nAnna\n\n"
	anna := "\n"
	player2 := "\nmaybe\ny\n" + strings.Repeat("\ny\n", 15) + "\nn\n"

	session := s.newSession(setup+anna+player2, "en-US")

	err := session.Run(context.Background())
	s.Require().NoError(err)

	out := s.out.String()
	s.Contains(out, "Please enter a valid number.")
	s.Contains(out, "The number of players must be between 2 and 8!")
	s.Contains(out, "Turn: Anna (score: 0)")
	s.Contains(out, "Anna rolled 2 3 4 6 2 for 0 points.")
	s.Contains(out, "Zero roll! Your 0 points are forfeited.")
	s.Contains(out, "Turn: Player 2 (score: 0)")
	s.Contains(out, "Player 2 rolled 6 6 6 6 6 for 60 points.")
	s.Contains(out, "Please answer y or n.")
	s.Equal(1, strings.Count(out, "Player 2 opened the game!"))
	s.Contains(out, "Player 2 banks")
	s.Contains(out, "Player 2 wins with")
	s.NotContains(out, "Game abandoned.")

	// two animation frames and the final roll, for eighteen rolls
	s.Equal(18*3, s.renderer.calls)

	// the session discards its game
	_, err = s.repo.GetGame(context.Background(), &gameRepo.GetGameInput{GameID: "game-1"})
	s.ErrorIs(err, gameRepo.ErrGameNotFound)
}

func (s *SessionTestSuite) TestInputClosedMidGame() {
	session := s.newSession("2\nAnna\nBoris\n", "en-US")

	err := session.Run(context.Background())

	s.ErrorIs(err, ErrInputClosed)
	s.Contains(s.out.String(), "Game abandoned.")

	_, err = s.repo.GetGame(context.Background(), &gameRepo.GetGameInput{GameID: "game-1"})
	s.ErrorIs(err, gameRepo.ErrGameNotFound)
}

func (s *SessionTestSuite) TestInputClosedDuringSetup() {
	session := s.newSession("3\nAnna\n", "en-US")

	_, err := session.Setup(context.Background())
	s.ErrorIs(err, ErrInputClosed)
}

func (s *SessionTestSuite) TestSetupAcceptsLastLineWithoutNewline() {
	session := s.newSession("2\nAnna\nBoris", "en-US")

	names, err := session.Setup(context.Background())
	s.Require().NoError(err)
	s.Equal([]string{"Anna", "Boris"}, names)
}

func (s *SessionTestSuite) TestRussianPrompts() {
	s.roller.faces = []int{5, 2, 3, 4, 6}

	session := s.newSession("2\nАнна\nБорис\n\nнет\n", "ru-RU")

	err := session.Run(context.Background())
	s.ErrorIs(err, ErrInputClosed)

	out := s.out.String()
	s.Contains(out, "Введите количество игроков (от 2 до 8): ")
	s.Contains(out, "Ход: Анна (Очки: 0)")
	s.Contains(out, "Анна записывает 5 очков (всего 5).")
	s.Contains(out, "Ход: Борис (Очки: 0)")
	s.Contains(out, "Игра прервана.")
}

func (s *SessionTestSuite) TestCancelledContext() {
	session := s.newSession("2\nAnna\nBoris\n", "en-US")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := session.Setup(ctx)
	s.ErrorIs(err, context.Canceled)
}

func (s *SessionTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{In: strings.NewReader(""), Out: s.out})
	s.Error(err)
}

func (s *SessionTestSuite) TestCancelWhileWaitingForInput() {
	in, writer := io.Pipe()
	defer writer.Close()

	session := s.newSessionWith(in, s.out, "en-US")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- session.Run(ctx)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		s.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		s.Fail("session kept waiting for input after cancel")
	}
}

func (s *SessionTestSuite) TestCancelAtRollPromptAbandonsGame() {
	in, writer := io.Pipe()
	defer writer.Close()

	out := &syncBuffer{}
	session := s.newSessionWith(in, out, "en-US")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- session.Run(ctx)
	}()

	go func() {
		_, _ = io.WriteString(writer, "2\nAnna\nBoris\n")
	}()

	s.Eventually(func() bool {
		return strings.Contains(out.String(), "Anna, press Enter to roll the dice.")
	}, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		s.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		s.Fail("session kept waiting for input after cancel")
	}

	s.Contains(out.String(), "Game abandoned.")

	_, err := s.repo.GetGame(context.Background(), &gameRepo.GetGameInput{GameID: "game-1"})
	s.ErrorIs(err, gameRepo.ErrGameNotFound)
}

func (s *SessionTestSuite) TestRunReportsMissingImages() {
	session := s.newSession("", "en-US")
	session.missing = []string{"dice3.png", "dice6.png"}

	err := session.Run(context.Background())
	s.ErrorIs(err, ErrInputClosed)

	s.True(strings.HasPrefix(s.out.String(), "Image not found: dice3.png, dice6.png. Drawing the dice instead.\n"))
}
