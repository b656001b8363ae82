package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/KirkDiggler/hakem/internal/assignment"
	"github.com/KirkDiggler/hakem/internal/models"
	"github.com/KirkDiggler/hakem/internal/services/game"
	"github.com/KirkDiggler/hakem/internal/services/messaging"
	"github.com/KirkDiggler/hakem/internal/session"
	"github.com/peterh/liner"
	"go.uber.org/zap"
)

var (
	// errQuit unwinds the console when the players leave
	errQuit = errors.New("quit")

	// errEnd unwinds a round when the players end the game early
	errEnd = errors.New("end game")
)

// Prompter reads one line of input. *liner.State satisfies it.
type Prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// Config holds the configuration for the console
type Config struct {
	// Game service driving the session
	GameService game.Service

	// Messaging is optional; without it the console skips the banter
	Messaging messaging.Service

	// Prompter is optional; a liner prompt on the terminal is used when nil
	Prompter Prompter

	// Out is optional; defaults to stdout
	Out io.Writer

	// Logger is optional
	Logger *zap.Logger

	// NoColor disables ANSI colours
	NoColor bool
}

// Console walks four players around one device through a game
type Console struct {
	gameService game.Service
	messaging   messaging.Service
	prompter    Prompter
	closer      io.Closer
	r           *renderer
	logger      *zap.Logger
}

// New creates a new console
func New(cfg *Config) (*Console, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Console{
		gameService: cfg.GameService,
		messaging:   cfg.Messaging,
		prompter:    cfg.Prompter,
		r:           &renderer{out: out, c: newPalette(cfg.NoColor)},
		logger:      logger,
	}

	if c.prompter == nil {
		line := liner.NewLiner()
		line.SetCtrlCAborts(true)
		c.prompter = line
		c.closer = line
	}

	return c, nil
}

// Close restores the terminal if the console opened it
func (c *Console) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// Run plays games until the players quit
func (c *Console) Run(ctx context.Context) error {
	c.r.c.Header.Fprintln(c.r.out, "--- Hakem ---")
	c.r.info("Type 'help' at any prompt during a round for the list of commands.")

	for {
		err := c.playGame(ctx)
		if errors.Is(err, errQuit) {
			c.r.info("Goodbye!")
			return nil
		}
		if err != nil {
			return err
		}

		if _, err := c.ask(ctx, "\nPress enter to play again or type 'quit' to leave: ", nil); err != nil {
			if errors.Is(err, errQuit) || errors.Is(err, errEnd) {
				c.r.info("Goodbye!")
				return nil
			}
			return err
		}

		if _, err := c.gameService.ResetGame(ctx, &game.ResetGameInput{}); err != nil {
			return fmt.Errorf("failed to reset game: %w", err)
		}
		c.r.clear()
	}
}

func (c *Console) playGame(ctx context.Context) error {
	if err := c.setup(ctx); err != nil {
		return err
	}

	for {
		err := c.playRound(ctx)
		if errors.Is(err, errEnd) {
			break
		}
		if err != nil {
			return err
		}
	}

	out, err := c.gameService.EndGame(ctx, &game.EndGameInput{})
	if err != nil {
		return fmt.Errorf("failed to end game: %w", err)
	}
	c.r.results(out.View)
	c.gameOverQuip(ctx, out.View)
	return nil
}

func (c *Console) setup(ctx context.Context) error {
	c.r.c.Header.Fprintln(c.r.out, "\nEnter the four players in the order they will take the device.")

	for {
		names := make([]string, 0, models.RosterSize)
		for i := 1; i <= models.RosterSize; i++ {
			name, err := c.askName(ctx, fmt.Sprintf("Player %d name: ", i))
			if err != nil {
				return err
			}
			names = append(names, name)
		}

		out, err := c.gameService.StartGame(ctx, &game.StartGameInput{Names: names})
		if errors.Is(err, game.ErrValidation) {
			c.r.warn("%v. Let's try that again.", err)
			c.errorQuip(ctx, messaging.ErrorTypeValidation)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to start game: %w", err)
		}

		c.r.info("Players: %s", strings.Join(out.View.Roster, ", "))
		return nil
	}
}

func (c *Console) playRound(ctx context.Context) error {
	shuffled, err := c.gameService.ShuffleRoles(ctx, &game.ShuffleRolesInput{})
	if err != nil {
		return fmt.Errorf("failed to shuffle roles: %w", err)
	}

	view := shuffled.View
	c.r.roundBanner(view)

	for view.AssignmentState == assignment.StateRevealing {
		player := view.CurrentPlayer
		c.r.passDevice(player)
		if _, err := c.ask(ctx, fmt.Sprintf("%s, press enter to see your role: ", player), nil); err != nil {
			return err
		}

		revealed, err := c.gameService.RevealRole(ctx, &game.RevealRoleInput{})
		if err != nil {
			return fmt.Errorf("failed to reveal role: %w", err)
		}
		c.r.secretRole(player, revealed.View.RevealedRole)

		if _, err := c.ask(ctx, "Press enter to hide your role and pass the device: ", nil); err != nil {
			return err
		}

		confirmed, err := c.gameService.ConfirmRole(ctx, &game.ConfirmRoleInput{})
		if err != nil {
			return fmt.Errorf("failed to confirm role: %w", err)
		}
		c.r.clear()
		view = confirmed.View
	}

	if _, err := c.gameService.BeginGuessing(ctx, &game.BeginGuessingInput{}); err != nil {
		return fmt.Errorf("failed to begin guessing: %w", err)
	}
	c.r.info("Every role is dealt. Everyone back to the table.")

	if _, err := c.ask(ctx, "Hakem, press enter to step forward: ", nil); err != nil {
		return err
	}
	hakem, err := c.gameService.RevealHakem(ctx, &game.RevealHakemInput{})
	if err != nil {
		return fmt.Errorf("failed to reveal hakem: %w", err)
	}
	view = hakem.View
	c.r.hakem(view)

	submitted, err := c.accuse(ctx, view)
	if err != nil {
		return err
	}
	c.r.result(submitted.Result, view.Roster)
	c.resultQuip(ctx, submitted.Result)

	for {
		input, err := c.ask(ctx, "Type 'next' for another round or 'end' to finish: ", nil)
		if err != nil {
			return err
		}
		if input != CommandNext {
			c.r.warn("Please type 'next' or 'end'.")
			continue
		}

		ended, err := c.gameService.EndRound(ctx, &game.EndRoundInput{})
		if err != nil {
			return fmt.Errorf("failed to end round: %w", err)
		}
		c.r.leaderboard(ended.View.Leaderboard)
		return nil
	}
}

// accuse asks the Jalad for a name or a number from the candidate list
// until the service accepts the guess
func (c *Console) accuse(ctx context.Context, view session.View) (*game.SubmitGuessOutput, error) {
	isPlayer := func(input string) bool {
		return matchName(view.Roster, input) != ""
	}

	for {
		c.r.candidates(view.Candidates)
		input, err := c.ask(ctx, "Jalad, who is the Harami? ", isPlayer)
		if err != nil {
			return nil, err
		}

		guess := matchName(view.Roster, input)
		if guess == "" {
			if n, convErr := strconv.Atoi(input); convErr == nil && n >= 1 && n <= len(view.Candidates) {
				guess = view.Candidates[n-1]
			}
		}
		if guess == "" {
			c.r.warn("%q is not at this table.", input)
			continue
		}

		out, err := c.gameService.SubmitGuess(ctx, &game.SubmitGuessInput{Guess: guess})
		if errors.Is(err, game.ErrIllegalGuessTarget) {
			c.logger.Debug("guess rejected", zap.String("guess", guess), zap.Error(err))
			c.r.warn("You can't accuse %s.", guess)
			c.errorQuip(ctx, messaging.ErrorTypeIllegalGuess)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to submit guess: %w", err)
		}
		return out, nil
	}
}

// ask prompts until it reads something other than an informational
// command. claim lets the caller take input, such as a player name, before
// it is read as a command.
func (c *Console) ask(ctx context.Context, prompt string, claim func(string) bool) (string, error) {
	for {
		input, err := c.read(ctx, prompt)
		if err != nil {
			return "", err
		}
		if claim != nil && claim(input) {
			return input, nil
		}

		cmd, ok := ParseCommand(input)
		if !ok {
			return input, nil
		}

		c.logger.Debug("command", zap.String("command", cmd))
		switch cmd {
		case CommandBoard:
			if err := c.showBoard(ctx); err != nil {
				return "", err
			}
		case CommandHistory:
			if err := c.showHistory(ctx); err != nil {
				return "", err
			}
		case CommandHelp:
			c.r.help()
		case CommandQuit:
			return "", errQuit
		case CommandEnd:
			return "", errEnd
		default:
			return cmd, nil
		}
	}
}

// askName reads a player name. Only 'quit' is treated as a command here.
func (c *Console) askName(ctx context.Context, prompt string) (string, error) {
	input, err := c.read(ctx, prompt)
	if err != nil {
		return "", err
	}
	if strings.EqualFold(input, CommandQuit) {
		return "", errQuit
	}
	return input, nil
}

func (c *Console) read(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.r.c.Prompt.Fprint(c.r.out, prompt)
	input, err := c.prompter.Prompt("")
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", errQuit
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	input = strings.TrimSpace(input)
	if input != "" {
		c.prompter.AppendHistory(input)
	}
	return input, nil
}

func (c *Console) showBoard(ctx context.Context) error {
	out, err := c.gameService.GetLeaderboard(ctx, &game.GetLeaderboardInput{})
	if err != nil {
		return fmt.Errorf("failed to get leaderboard: %w", err)
	}
	c.r.leaderboard(out.Leaderboard)
	return nil
}

func (c *Console) showHistory(ctx context.Context) error {
	out, err := c.gameService.GetHistory(ctx, &game.GetHistoryInput{})
	if err != nil {
		return fmt.Errorf("failed to get history: %w", err)
	}
	c.r.history(out.History, out.Stats)
	return nil
}

func (c *Console) resultQuip(ctx context.Context, result models.RoundResult) {
	if c.messaging == nil {
		return
	}
	out, err := c.messaging.GetRoundResultMessage(ctx, &messaging.GetRoundResultMessageInput{
		Guesser: result.Guesser,
		Accused: result.Guess,
		Harami:  result.ActualHarami,
		Correct: result.CorrectGuess,
	})
	if err != nil {
		c.logger.Debug("no round result message", zap.Error(err))
		return
	}
	c.r.say(out.Message)
}

func (c *Console) gameOverQuip(ctx context.Context, view session.View) {
	if c.messaging == nil {
		return
	}
	out, err := c.messaging.GetGameOverMessage(ctx, &messaging.GetGameOverMessageInput{
		Leaders: view.Leaders,
		Rounds:  view.Stats.Rounds,
	})
	if err != nil {
		c.logger.Debug("no game over message", zap.Error(err))
		return
	}
	c.r.say(out.Message)

	for _, standing := range view.Leaderboard {
		comment, err := c.messaging.GetLeaderboardMessage(ctx, &messaging.GetLeaderboardMessageInput{
			PlayerName:   standing.Player,
			Rank:         standing.Position - 1,
			TotalPlayers: len(view.Leaderboard),
			Score:        standing.Score,
		})
		if err != nil {
			c.logger.Debug("no leaderboard message", zap.Error(err))
			return
		}
		fmt.Fprintf(c.r.out, "  %s\n", comment.Message)
	}
}

func (c *Console) errorQuip(ctx context.Context, errorType messaging.ErrorType) {
	if c.messaging == nil {
		return
	}
	out, err := c.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{ErrorType: errorType})
	if err != nil {
		c.logger.Debug("no error message", zap.Error(err))
		return
	}
	c.r.say(out.Message)
}

// matchName finds input on the roster. An exact match wins; otherwise case
// is ignored as long as only one name fits.
func matchName(roster []string, input string) string {
	match := ""
	for _, name := range roster {
		if name == input {
			return name
		}
		if strings.EqualFold(name, input) {
			if match != "" {
				return ""
			}
			match = name
		}
	}
	return match
}
