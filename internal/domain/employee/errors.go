package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrRFIDCardExists     = errors.New("RFID card already assigned to another employee")
)
