package shift

import "errors"

var (
	ErrShiftNotFound   = errors.New("work shift not found")
	ErrShiftNameExists = errors.New("work shift with this name already exists")
	ErrShiftInUse      = errors.New("work shift still has employees assigned")
)
