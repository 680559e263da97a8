package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already approved or rejected")
	ErrInvalidDateRange             = errors.New("end date precedes start date")
)
