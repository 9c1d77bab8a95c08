package core

import (
	"time"
)

// Loan is one lending of a book copy to a reader, open or returned.
type Loan struct {
	BookID      BookIDString
	ReaderID    ReaderIDString
	LentAt      time.Time
	DueAt       time.Time
	IsReturned  bool
	ReturnedAt  time.Time // zero while the loan is open
	RecordedFee Amount
}

// Fee is the fee owed for this loan at instant now.
func (l Loan) Fee(schedule *FeeSchedule, now time.Time) (Amount, error) {
	return ComputeFee(l.IsReturned, l.DueAt, l.RecordedFee, schedule, now)
}
