package job

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/streamhub-api/services/api-service/internal/usecase"
)

const runTimeout = time.Minute

// Pruner drops idle rate limiter buckets.
type Pruner interface {
	Prune() int
}

// Scheduler runs the periodic maintenance of the API: clearing expired
// password reset tokens and idle rate limiter buckets.
type Scheduler struct {
	cron    *cron.Cron
	resets  usecase.PasswordResetUsecase
	limiter Pruner
	logger  *zerolog.Logger
}

// NewScheduler registers the cleanup job on schedule, a standard cron
// expression or a descriptor such as "@hourly". A nil limiter is skipped.
func NewScheduler(
	schedule string,
	resets usecase.PasswordResetUsecase,
	limiter Pruner,
	logger *zerolog.Logger,
) (*Scheduler, error) {
	cronLog := cronLogger{logger: logger}

	s := &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cronLog),
			cron.SkipIfStillRunning(cronLog),
		)),
		resets:  resets,
		limiter: limiter,
		logger:  logger,
	}

	if _, err := s.cron.AddFunc(schedule, func() { s.RunOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("invalid cleanup schedule %q: %w", schedule, err)
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info().Msg("cleanup scheduler started")
}

// Stop prevents new runs and waits for a running one until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn().Msg("cleanup job still running at shutdown")
	}
}

// RunOnce performs a single cleanup pass.
func (s *Scheduler) RunOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	cleared, err := s.resets.CleanupExpiredTokens(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to clear expired reset tokens")
	} else if cleared > 0 {
		s.logger.Info().Int64("cleared", cleared).Msg("cleared expired reset tokens")
	}

	if s.limiter != nil {
		if pruned := s.limiter.Prune(); pruned > 0 {
			s.logger.Debug().Int("pruned", pruned).Msg("pruned idle rate limiter buckets")
		}
	}
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct {
	logger *zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
