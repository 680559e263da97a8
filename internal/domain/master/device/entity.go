package device

import "time"

// DeviceStatus enum
type DeviceStatus string

const (
	StatusActive      DeviceStatus = "active"
	StatusInactive    DeviceStatus = "inactive"
	StatusMaintenance DeviceStatus = "maintenance"
)

// Device - One RFID reader in the inventory. The capture subsystem tags taps
// with the reader's serial number; this table is the admin-facing registry.
type Device struct {
	ID           string
	Name         string
	Location     string
	SerialNumber string
	Status       DeviceStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
