package device

import "errors"

var (
	ErrDeviceNotFound     = errors.New("device not found")
	ErrDeviceSerialExists = errors.New("device with this serial number already exists")
)
