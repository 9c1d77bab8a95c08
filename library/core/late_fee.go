package core

import (
	"time"
)

const secondsPerDay = 24 * 60 * 60

// ComputeFee returns what a reader owes for one loan at instant now.
//
//   - a returned loan owes exactly the fee recorded at return time, as recorded
//   - an open loan without a fee schedule owes nothing
//   - an open loan past its due date owes the initial fee once,
//     plus the following-date fee for every full day late (day one is included in both)
//
// An open loan must have a due date and its fee is never negative.
// Recorded fees are validated where the return event is built, see BookCopyReturnedByReader.Validate.
func ComputeFee(
	isReturned bool,
	dueDate time.Time,
	recordedFee Amount,
	schedule *FeeSchedule,
	now time.Time,
) (Amount, error) {

	if isReturned {
		return recordedFee, nil
	}

	if dueDate.IsZero() {
		return ZeroAmount, newValidationError("dueDate", "", ErrMissingDueDate)
	}

	if schedule == nil {
		return ZeroAmount, nil
	}

	if err := schedule.validate(); err != nil {
		return ZeroAmount, err
	}

	fee := ZeroAmount

	if now.After(dueDate) {
		fee = fee.Add(schedule.InitialFee)
	}

	if daysLate := DaysLate(now, dueDate); daysLate >= 1 {
		fee = fee.Add(schedule.FollowingDateFee.Mul(AmountFromInt(int64(daysLate))))
	}

	return fee, nil
}

// ComputeFeeFromISO is ComputeFee for a due date in ISO 8601 text form.
// The due date of a returned loan is not parsed.
func ComputeFeeFromISO(
	isReturned bool,
	dueDate string,
	recordedFee Amount,
	schedule *FeeSchedule,
	now time.Time,
) (Amount, error) {

	if isReturned {
		return ComputeFee(true, time.Time{}, recordedFee, schedule, now)
	}

	parsedDueDate, err := ParseDueDate(dueDate)
	if err != nil {
		return ZeroAmount, err
	}

	return ComputeFee(false, parsedDueDate, recordedFee, schedule, now)
}

// DaysLate is the signed number of full days from dueDate to now.
//
// Both instants are compared by their wall clock in the due date's location:
// the calendar day difference counts, minus one if the last day is not complete.
// A day shortened or stretched by a DST switch still counts as one day.
func DaysLate(now time.Time, dueDate time.Time) int {
	nowWall := wallClock(now.In(dueDate.Location()))
	dueWall := wallClock(dueDate)

	sign := nowWall.Compare(dueWall)
	if sign == 0 {
		return 0
	}

	difference := calendarDays(nowWall, dueWall)
	if difference < 0 {
		difference = -difference
	}

	shifted := nowWall.AddDate(0, 0, -sign*difference)
	if shifted.Compare(dueWall) == -sign {
		difference--
	}

	return sign * difference
}

// wallClock keeps the clock reading and drops the zone, so comparisons ignore offset changes.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func calendarDays(later time.Time, earlier time.Time) int {
	laterDay := time.Date(later.Year(), later.Month(), later.Day(), 0, 0, 0, 0, time.UTC)
	earlierDay := time.Date(earlier.Year(), earlier.Month(), earlier.Day(), 0, 0, 0, 0, time.UTC)

	// Unix seconds instead of Sub, a time.Duration overflows after 292 years.
	return int((laterDay.Unix() - earlierDay.Unix()) / secondsPerDay)
}
