package device

import "context"

type DeviceRepository interface {
	Create(ctx context.Context, device Device) (Device, error)
	GetByID(ctx context.Context, id string) (Device, error)
	List(ctx context.Context) ([]Device, error)
	Update(ctx context.Context, req UpdateDeviceRequest) error
	Delete(ctx context.Context, id string) error
}
