package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sethvargo/go-retry"
)

// ErrorClassification tells [withRetry] whether a failed statement may
// succeed on another attempt.
type ErrorClassification int

const (
	// NonRetryable is the classification of unknown errors, constraint
	// violations, syntax errors and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures: lost connections, serialization
	// failures, deadlocks and a busy database.
	Retryable
)

// maxAttempts bounds how many times a retryable statement is executed.
const maxAttempts = 3

var retryBackoff = 50 * time.Millisecond

// PostgresErrorClassifier implements [ErrorClassificator] for errors
// returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError and classifies its SQLSTATE.
// Errors of any other type are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a SQLSTATE to an [ErrorClassification]. Connection
// exceptions (class 08), transaction rollbacks (class 40) and
// cannot_connect_now (57P03) are retryable.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgErr.Code == pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}

// newRetryBackoff waits retryBackoff times the attempt number between
// attempts and stops after maxAttempts executions.
func newRetryBackoff() retry.Backoff {
	var attempt time.Duration
	linear := retry.BackoffFunc(func() (time.Duration, bool) {
		attempt++
		return retryBackoff * attempt, false
	})

	return retry.WithMaxRetries(maxAttempts-1, linear)
}

// withRetry runs op until it succeeds, fails with a non-retryable error,
// runs out of attempts or ctx is done. A cancelled wait returns the last
// statement error joined with the context error.
func withRetry(ctx context.Context, classifier ErrorClassificator, op func() error) error {
	var lastErr error
	err := retry.Do(ctx, newRetryBackoff(), func(context.Context) error {
		if lastErr = op(); lastErr == nil {
			return nil
		}
		if classifier != nil && classifier.Classify(lastErr) == Retryable {
			return retry.RetryableError(lastErr)
		}
		return lastErr
	})
	if err != nil && lastErr != nil && !errors.Is(err, lastErr) {
		return errors.Join(lastErr, err)
	}

	return err
}
