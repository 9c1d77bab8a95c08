package addbookcopy_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-latefees-go/library/core"
	"github.com/AntonStoeckl/library-latefees-go/library/features/command/addbookcopy"
)

func givenCommand(bookID uuid.UUID, at time.Time) addbookcopy.Command {
	return addbookcopy.BuildCommand(
		bookID,
		"978-1-098-10013-1",
		"Learning Domain-Driven Design",
		"Vlad Khononov",
		"Software Engineering",
		at,
	)
}

func Test_Decide_Success_WhenBookNotInCirculation(t *testing.T) {
	// arrange
	bookID := uuid.New()
	now := time.Now()

	// act
	result := addbookcopy.Decide(nil, givenCommand(bookID, now))

	// assert
	require.Equal(t, core.SuccessOutcome, result.Outcome)
	event, ok := result.Event.(core.BookCopyAddedToCirculation)
	require.True(t, ok)
	assert.Equal(t, bookID.String(), event.BookID)
	assert.Equal(t, "978-1-098-10013-1", event.ISBN)
	assert.Equal(t, "Software Engineering", event.Category)
	assert.NoError(t, result.HasError())
}

func Test_Decide_Idempotent_WhenBookAlreadyInCirculation(t *testing.T) {
	// arrange
	bookID := uuid.New()
	now := time.Now()
	history := core.DomainEvents{
		core.BuildBookCopyAddedToCirculation(bookID, "isbn", "title", "author", "category", now.Add(-time.Hour)),
	}

	// act
	result := addbookcopy.Decide(history, givenCommand(bookID, now))

	// assert
	assert.True(t, result.IsIdempotent())
	assert.False(t, result.HasEventToAppend())
}

func Test_Decide_Success_WhenOnlyAnotherBookIsInCirculation(t *testing.T) {
	// arrange
	now := time.Now()
	history := core.DomainEvents{
		core.BuildBookCopyAddedToCirculation(uuid.New(), "isbn", "title", "author", "category", now.Add(-time.Hour)),
	}

	// act
	result := addbookcopy.Decide(history, givenCommand(uuid.New(), now))

	// assert
	assert.True(t, result.HasEventToAppend())
}

func Test_Decide_Success_WhenBookWasRemovedFromCirculation(t *testing.T) {
	// arrange
	bookID := uuid.New()
	now := time.Now()
	history := core.DomainEvents{
		core.BuildBookCopyAddedToCirculation(bookID, "isbn", "title", "author", "category", now.Add(-2*time.Hour)),
		core.BuildBookCopyRemovedFromCirculation(bookID, now.Add(-time.Hour)),
	}

	// act
	result := addbookcopy.Decide(history, givenCommand(bookID, now))

	// assert
	require.Equal(t, core.SuccessOutcome, result.Outcome)
	assert.True(t, result.HasEventToAppend())
}
