package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/KirkDiggler/hakem/internal/common/clock"
	"github.com/KirkDiggler/hakem/internal/common/uuid"
	sessionRepo "github.com/KirkDiggler/hakem/internal/repositories/session"
	"github.com/KirkDiggler/hakem/internal/resolver"
	"github.com/KirkDiggler/hakem/internal/session"
	"github.com/KirkDiggler/hakem/internal/shuffle"
	"go.uber.org/zap"
)

// service implements the Service interface. It owns exactly one session and
// runs every operation under a single lock: load, transition, save.
type service struct {
	mu sync.Mutex

	repo          sessionRepo.Repository
	shuffler      shuffle.Permuter
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *zap.Logger
	award         int

	sessionID string
}

// New creates a game service and stores an empty session for it
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}
	if cfg.Shuffler == nil {
		return nil, ErrNilShuffler
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	award := cfg.Award
	if award <= 0 {
		award = resolver.DefaultAward
	}

	s := &service{
		repo:          cfg.Repository,
		shuffler:      cfg.Shuffler,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger,
		award:         award,
	}

	fresh := session.New(cfg.UUIDGenerator.NewUUID())
	if err := s.save(context.Background(), fresh); err != nil {
		return nil, err
	}
	s.sessionID = fresh.ID()

	logger.Info("session created", zap.String("session_id", s.sessionID), zap.Int("award", award))
	return s, nil
}

// StartGame seats four players and opens round one
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	next, err := s.apply(ctx, "start game", func(current session.Session) (session.Session, error) {
		return current.Start(input.Names)
	})
	if err != nil {
		return nil, err
	}

	return &StartGameOutput{View: next.View()}, nil
}

// ShuffleRoles deals the roles for the current round
func (s *service) ShuffleRoles(ctx context.Context, input *ShuffleRolesInput) (*ShuffleRolesOutput, error) {
	next, err := s.apply(ctx, "shuffle roles", func(current session.Session) (session.Session, error) {
		return current.Shuffle(s.shuffler)
	})
	if err != nil {
		return nil, err
	}

	return &ShuffleRolesOutput{View: next.View()}, nil
}

// RevealRole shows the player holding the device their role
func (s *service) RevealRole(ctx context.Context, input *RevealRoleInput) (*RevealRoleOutput, error) {
	next, err := s.apply(ctx, "reveal role", func(current session.Session) (session.Session, error) {
		return current.Reveal()
	})
	if err != nil {
		return nil, err
	}

	return &RevealRoleOutput{View: next.View()}, nil
}

// ConfirmRole hands the device to the next player
func (s *service) ConfirmRole(ctx context.Context, input *ConfirmRoleInput) (*ConfirmRoleOutput, error) {
	next, err := s.apply(ctx, "confirm role", func(current session.Session) (session.Session, error) {
		return current.Confirm()
	})
	if err != nil {
		return nil, err
	}

	a, _ := next.Assignment()
	roles, allAssigned := a.RoleMap()
	if allAssigned {
		s.logger.Debug("roles assigned",
			zap.String("session_id", next.ID()),
			zap.Int("round", next.Round()),
			zap.Any("roles", roles),
		)
	}

	return &ConfirmRoleOutput{
		View:        next.View(),
		AllAssigned: allAssigned,
	}, nil
}

// BeginGuessing moves a fully assigned round to the Hakem reveal
func (s *service) BeginGuessing(ctx context.Context, input *BeginGuessingInput) (*BeginGuessingOutput, error) {
	next, err := s.apply(ctx, "begin guessing", func(current session.Session) (session.Session, error) {
		return current.BeginGuessing()
	})
	if err != nil {
		return nil, err
	}

	return &BeginGuessingOutput{View: next.View()}, nil
}

// RevealHakem makes the Hakem public
func (s *service) RevealHakem(ctx context.Context, input *RevealHakemInput) (*RevealHakemOutput, error) {
	next, err := s.apply(ctx, "reveal hakem", func(current session.Session) (session.Session, error) {
		return current.RevealHakem()
	})
	if err != nil {
		return nil, err
	}

	return &RevealHakemOutput{View: next.View()}, nil
}

// SubmitGuess resolves the round on the Jalad's accusation
func (s *service) SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	next, err := s.apply(ctx, "submit guess", func(current session.Session) (session.Session, error) {
		return current.SubmitGuess(input.Guess, s.uuidGenerator.NewUUID(), s.clock.Now(), s.award)
	})
	if err != nil {
		return nil, err
	}

	result, _ := next.Pending()
	s.logger.Info("round resolved",
		zap.String("session_id", next.ID()),
		zap.Int("round", result.Round),
		zap.String("guess", result.Guess),
		zap.String("harami", result.ActualHarami),
		zap.Bool("correct", result.CorrectGuess),
		zap.String("winner", result.Winner),
		zap.Int("points", result.Points),
	)

	return &SubmitGuessOutput{
		View:   next.View(),
		Result: result,
	}, nil
}

// EndRound banks the pending result and starts the next round
func (s *service) EndRound(ctx context.Context, input *EndRoundInput) (*EndRoundOutput, error) {
	next, err := s.apply(ctx, "end round", func(current session.Session) (session.Session, error) {
		return current.EndRound()
	})
	if err != nil {
		return nil, err
	}

	history := next.Ledger().History()
	return &EndRoundOutput{
		View:   next.View(),
		Banked: history[len(history)-1],
	}, nil
}

// EndGame closes the session and shows final standings
func (s *service) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	next, err := s.apply(ctx, "end game", func(current session.Session) (session.Session, error) {
		return current.EndGame()
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("final standings",
		zap.String("session_id", next.ID()),
		zap.Strings("leaders", next.Ledger().Leaders()),
		zap.Any("scores", next.Ledger().Scores()),
	)

	return &EndGameOutput{View: next.View()}, nil
}

// ResetGame throws the session away and stores an empty one under a new ID.
// It never reads the old session, so it works from any phase and even when
// the stored copy is lost.
func (s *service) ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fresh := session.New(s.uuidGenerator.NewUUID())
	if err := s.save(ctx, fresh); err != nil {
		return nil, err
	}

	oldID := s.sessionID
	s.sessionID = fresh.ID()

	if err := s.repo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{SessionID: oldID}); err != nil {
		s.logger.Warn("failed to delete old session", zap.String("session_id", oldID), zap.Error(err))
	}

	s.logger.Info("session reset",
		zap.String("old_session_id", oldID),
		zap.String("session_id", fresh.ID()),
	)

	return &ResetGameOutput{View: fresh.View()}, nil
}

// GetSession returns the current public view
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{View: current.View()}, nil
}

// GetLeaderboard returns the standings
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return &GetLeaderboardOutput{
		Leaderboard: current.Ledger().Leaderboard(),
		Scores:      current.Ledger().Scores(),
	}, nil
}

// GetHistory returns committed rounds, oldest first
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return &GetHistoryOutput{
		History: current.Ledger().History(),
		Stats:   current.Ledger().Stats(),
	}, nil
}

// apply runs one transition against the stored session. Nothing is saved
// when the transition or the save fails.
func (s *service) apply(ctx context.Context, op string, transition func(session.Session) (session.Session, error)) (session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx)
	if err != nil {
		return session.Session{}, err
	}

	next, err := transition(*current)
	if err != nil {
		s.logger.Info(op+" rejected", append(fields(*current), zap.Error(err))...)
		return session.Session{}, err
	}

	if err := s.save(ctx, next); err != nil {
		s.logger.Error(op+" not saved", append(fields(*current), zap.Error(err))...)
		return session.Session{}, err
	}

	s.logger.Info(op, fields(next)...)
	return next, nil
}

func (s *service) load(ctx context.Context) (*session.Session, error) {
	current, err := s.repo.GetSession(ctx, &sessionRepo.GetSessionInput{SessionID: s.sessionID})
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return current, nil
}

func (s *service) save(ctx context.Context, sess session.Session) error {
	if err := s.repo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: &sess}); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func fields(sess session.Session) []zap.Field {
	return []zap.Field{
		zap.String("session_id", sess.ID()),
		zap.String("phase", string(sess.Phase())),
		zap.String("stage", string(sess.Stage())),
		zap.Int("round", sess.Round()),
	}
}
