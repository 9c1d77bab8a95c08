package shell_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-latefees-go/eventstore"
	"github.com/AntonStoeckl/library-latefees-go/library/shell"
	"github.com/AntonStoeckl/library-latefees-go/testutil"
)

func Test_RetryWithExponentialBackoff_Success_NoRetries(t *testing.T) {
	// arrange
	callCount := 0
	fn := func(_ context.Context) error {
		callCount++
		return nil
	}

	// act
	meta, err := shell.RetryWithExponentialBackoff(t.Context(), fn)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 1, callCount)
	assert.Equal(t, 1, meta.Attempts)
	assert.Equal(t, time.Duration(0), meta.TotalDelay)
	assert.Equal(t, shell.ErrorTypeNone, meta.LastErrorType)
	assert.False(t, meta.RetriesExhausted)
}

func Test_RetryWithExponentialBackoff_RetryOnConcurrencyConflict(t *testing.T) {
	// arrange
	callCount := 0
	fn := func(_ context.Context) error {
		callCount++
		if callCount < 3 {
			return eventstore.ErrConcurrencyConflict
		}
		return nil
	}
	logSpy := testutil.NewLogHandlerSpy(t)

	// act
	meta, err := shell.RetryWithExponentialBackoff(
		t.Context(),
		fn,
		shell.WithBaseDelay(time.Millisecond),
		shell.WithRetryLogging(logSpy.Logger(), "LendBookCopy"),
	)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 3, callCount)
	assert.Equal(t, 3, meta.Attempts)
	assert.Greater(t, meta.TotalDelay, time.Duration(0))
	assert.Equal(t, shell.ErrorTypeNone, meta.LastErrorType)
	assert.Equal(t, 2, logSpy.Count(shell.LogMsgCommandRetry))
}

func Test_RetryWithExponentialBackoff_RetriesExhausted(t *testing.T) {
	// arrange
	callCount := 0
	fn := func(_ context.Context) error {
		callCount++
		return errors.Join(errors.New("append failed"), eventstore.ErrConcurrencyConflict)
	}

	// act
	meta, err := shell.RetryWithExponentialBackoff(t.Context(), fn, shell.WithMaxAttempts(3), shell.WithBaseDelay(time.Millisecond))

	// assert
	assert.ErrorIs(t, err, eventstore.ErrConcurrencyConflict)
	assert.Equal(t, 3, callCount)
	assert.Equal(t, 3, meta.Attempts)
	assert.True(t, meta.RetriesExhausted)
	assert.Equal(t, shell.ErrorTypeConcurrencyConflict, meta.LastErrorType)
}

func Test_RetryWithExponentialBackoff_NonRetryableError_FailsFast(t *testing.T) {
	// arrange
	callCount := 0
	permanent := errors.New("database is down")
	fn := func(_ context.Context) error {
		callCount++
		return permanent
	}

	// act
	meta, err := shell.RetryWithExponentialBackoff(t.Context(), fn)

	// assert
	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, callCount)
	assert.Equal(t, shell.ErrorTypeOther, meta.LastErrorType)
	assert.False(t, meta.RetriesExhausted)
}

func Test_RetryWithExponentialBackoff_StopsOnContextCancellation(t *testing.T) {
	// arrange
	ctx, cancel := context.WithCancel(t.Context())
	fn := func(_ context.Context) error {
		cancel()
		return eventstore.ErrConcurrencyConflict
	}

	// act
	meta, err := shell.RetryWithExponentialBackoff(ctx, fn, shell.WithBaseDelay(time.Second))

	// assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, meta.Attempts)
	assert.Equal(t, shell.ErrorTypeCanceled, meta.LastErrorType)
}

func Test_RetryWithExponentialBackoff_InvalidOptions(t *testing.T) {
	testCases := []struct {
		name        string
		option      shell.RetryOption
		expectedErr error
	}{
		{name: "zero max attempts", option: shell.WithMaxAttempts(0), expectedErr: shell.ErrInvalidMaxAttempts},
		{name: "negative base delay", option: shell.WithBaseDelay(-time.Millisecond), expectedErr: shell.ErrNegativeBaseDelay},
		{name: "jitter factor above one", option: shell.WithJitterFactor(1.5), expectedErr: shell.ErrInvalidJitterFactor},
		{name: "retry logging without command type", option: shell.WithRetryLogging(nil, ""), expectedErr: shell.ErrEmptyCommandType},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := shell.RetryWithExponentialBackoff(t.Context(), func(_ context.Context) error { return nil }, tc.option)

			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func Test_StatusOf(t *testing.T) {
	assert.Equal(t, shell.StatusSuccess, shell.StatusOf(nil))
	assert.Equal(t, shell.StatusConcurrencyConflict, shell.StatusOf(eventstore.ErrConcurrencyConflict))
	assert.Equal(t, shell.StatusCanceled, shell.StatusOf(context.Canceled))
	assert.Equal(t, shell.StatusTimeout, shell.StatusOf(context.DeadlineExceeded))
	assert.Equal(t, shell.StatusError, shell.StatusOf(errors.New("boom")))
}
