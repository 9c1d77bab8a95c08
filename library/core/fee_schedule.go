package core

// FeeSchedule is the process-wide late fee configuration.
// A missing schedule is represented by a nil *FeeSchedule.
type FeeSchedule struct {
	InitialFee       Amount
	FollowingDateFee Amount
}

// BuildFeeSchedule rejects negative fees.
func BuildFeeSchedule(initialFee Amount, followingDateFee Amount) (FeeSchedule, error) {
	schedule := FeeSchedule{InitialFee: initialFee, FollowingDateFee: followingDateFee}

	if err := schedule.validate(); err != nil {
		return FeeSchedule{}, err
	}

	return schedule, nil
}

// Equal compares by value, "5" and "5.00" are the same fee.
func (s FeeSchedule) Equal(other FeeSchedule) bool {
	return s.InitialFee.Equal(other.InitialFee) && s.FollowingDateFee.Equal(other.FollowingDateFee)
}

func (s FeeSchedule) validate() error {
	if s.InitialFee.IsNegative() {
		return newValidationError("initialFee", s.InitialFee.String(), ErrNegativeAmount)
	}

	if s.FollowingDateFee.IsNegative() {
		return newValidationError("followingDateFee", s.FollowingDateFee.String(), ErrNegativeAmount)
	}

	return nil
}
