package errors

var (
	ErrScheduleNotFound = &DomainError{
		Code:    "SCHEDULE_NOT_FOUND",
		Message: "schedule not found",
	}
	ErrProposalNotFound = &DomainError{
		Code:    "PROPOSAL_NOT_FOUND",
		Message: "booking proposal not found",
	}
	ErrNotParticipant = &DomainError{
		Code:    "NOT_PARTICIPANT",
		Message: "user is not a participant of this schedule",
	}
	ErrAlreadyConfirmed = &DomainError{
		Code:    "ALREADY_CONFIRMED",
		Message: "booking group is already paid and confirmed",
	}
	ErrProposalClosed = &DomainError{
		Code:    "PROPOSAL_CLOSED",
		Message: "booking group has been cancelled or completed",
	}
	ErrPriceNotSet = &DomainError{
		Code:    "PRICE_NOT_SET",
		Message: "tutor has not configured an hourly price",
	}
	ErrInvalidTransition = &DomainError{
		Code:    "INVALID_TRANSITION",
		Message: "schedule status transition is not allowed",
	}
)
