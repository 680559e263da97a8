package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/presensia/presensia-backend-go/internal/domain/master/device"
	"github.com/presensia/presensia-backend-go/internal/pkg/database"
)

type deviceRepository struct {
	db *database.DB
}

func NewDeviceRepository(db *database.DB) device.DeviceRepository {
	return &deviceRepository{db: db}
}

func (r *deviceRepository) Create(ctx context.Context, d device.Device) (device.Device, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO devices (id, name, location, serial_number, status)
		VALUES (uuidv7(), $1, $2, $3, $4)
		RETURNING id, name, location, serial_number, status, created_at, updated_at
	`

	var created device.Device
	err := q.QueryRow(ctx, query, d.Name, d.Location, d.SerialNumber, d.Status).Scan(
		&created.ID, &created.Name, &created.Location, &created.SerialNumber,
		&created.Status, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return device.Device{}, err
	}

	return created, nil
}

func (r *deviceRepository) GetByID(ctx context.Context, id string) (device.Device, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, location, serial_number, status, created_at, updated_at
		FROM devices
		WHERE id = $1
	`

	var d device.Device
	err := q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Name, &d.Location, &d.SerialNumber, &d.Status, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return device.Device{}, err
	}

	return d, nil
}

func (r *deviceRepository) List(ctx context.Context) ([]device.Device, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, location, serial_number, status, created_at, updated_at
		FROM devices
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	defer rows.Close()

	var devices []device.Device
	for rows.Next() {
		var d device.Device
		if err := rows.Scan(&d.ID, &d.Name, &d.Location, &d.SerialNumber, &d.Status, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}
		devices = append(devices, d)
	}
	return devices, rows.Err()
}

func (r *deviceRepository) Update(ctx context.Context, req device.UpdateDeviceRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []any{}
	argPos := 1

	if req.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *req.Name)
		argPos++
	}
	if req.Location != nil {
		sets = append(sets, fmt.Sprintf("location = $%d", argPos))
		args = append(args, *req.Location)
		argPos++
	}
	if req.Status != nil {
		sets = append(sets, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *req.Status)
		argPos++
	}

	query := fmt.Sprintf("UPDATE devices SET %s WHERE id = $%d", strings.Join(sets, ", "), argPos)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return device.ErrDeviceNotFound
	}
	return nil
}

func (r *deviceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM devices WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return device.ErrDeviceNotFound
	}
	return nil
}
