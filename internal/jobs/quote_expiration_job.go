package jobs

import (
	"context"
	"log/slog"

	"shipping/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// QuoteExpirationJob manages the scheduled expiration sweep over quotes.
// Runs every minute to flip quotes whose validity window has passed.
type QuoteExpirationJob struct {
	handler commands.ExpireQuotesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewQuoteExpirationJob creates a new job for expiring overdue quotes.
// Uses ExpireQuotesCommandHandler to process the sweep every minute.
func NewQuoteExpirationJob(handler commands.ExpireQuotesCommandHandler, logger *slog.Logger) *QuoteExpirationJob {
	return &QuoteExpirationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "quote_expiration_job"),
	}
}

// Start begins the quote expiration job to run at the top of every minute.
func (j *QuoteExpirationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpireQuotesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Quote expiration job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Quote expiration job started (running every minute)")
	return nil
}

// Stop stops the quote expiration job.
func (j *QuoteExpirationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Quote expiration job stopped")
}
