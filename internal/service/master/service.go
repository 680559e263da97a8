package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/presensia/presensia-backend-go/internal/domain/master/device"
	"github.com/presensia/presensia-backend-go/internal/domain/master/division"
	"github.com/presensia/presensia-backend-go/internal/domain/master/shift"
)

type MasterService interface {
	// Division operations
	CreateDivision(ctx context.Context, req division.CreateDivisionRequest) (division.DivisionResponse, error)
	GetDivision(ctx context.Context, id string) (division.DivisionResponse, error)
	ListDivisions(ctx context.Context) ([]division.DivisionResponse, error)
	UpdateDivision(ctx context.Context, req division.UpdateDivisionRequest) error
	DeleteDivision(ctx context.Context, id string) error

	// Work shift operations
	CreateShift(ctx context.Context, req shift.CreateWorkShiftRequest) (shift.WorkShiftResponse, error)
	GetShift(ctx context.Context, id string) (shift.WorkShiftResponse, error)
	ListShifts(ctx context.Context) ([]shift.WorkShiftResponse, error)
	UpdateShift(ctx context.Context, req shift.UpdateWorkShiftRequest) error
	DeleteShift(ctx context.Context, id string) error

	// Device operations
	CreateDevice(ctx context.Context, req device.CreateDeviceRequest) (device.DeviceResponse, error)
	GetDevice(ctx context.Context, id string) (device.DeviceResponse, error)
	ListDevices(ctx context.Context) ([]device.DeviceResponse, error)
	UpdateDevice(ctx context.Context, req device.UpdateDeviceRequest) error
	DeleteDevice(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	divisionRepo division.DivisionRepository
	shiftRepo    shift.WorkShiftRepository
	deviceRepo   device.DeviceRepository
}

func NewMasterService(
	divisionRepo division.DivisionRepository,
	shiftRepo shift.WorkShiftRepository,
	deviceRepo device.DeviceRepository,
) MasterService {
	return &masterServiceImpl{
		divisionRepo: divisionRepo,
		shiftRepo:    shiftRepo,
		deviceRepo:   deviceRepo,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// ==================== DIVISION OPERATIONS ====================

func (s *masterServiceImpl) CreateDivision(ctx context.Context, req division.CreateDivisionRequest) (division.DivisionResponse, error) {
	if err := req.Validate(); err != nil {
		return division.DivisionResponse{}, err
	}

	created, err := s.divisionRepo.Create(ctx, division.Division{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return division.DivisionResponse{}, division.ErrDivisionNameExists
		}
		return division.DivisionResponse{}, fmt.Errorf("failed to create division: %w", err)
	}

	return division.ToResponse(created), nil
}

func (s *masterServiceImpl) GetDivision(ctx context.Context, id string) (division.DivisionResponse, error) {
	entity, err := s.divisionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return division.DivisionResponse{}, division.ErrDivisionNotFound
		}
		return division.DivisionResponse{}, fmt.Errorf("failed to get division: %w", err)
	}

	return division.ToResponse(entity), nil
}

func (s *masterServiceImpl) ListDivisions(ctx context.Context) ([]division.DivisionResponse, error) {
	divisions, err := s.divisionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list divisions: %w", err)
	}

	responses := make([]division.DivisionResponse, 0, len(divisions))
	for _, d := range divisions {
		responses = append(responses, division.ToResponse(d))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateDivision(ctx context.Context, req division.UpdateDivisionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.divisionRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return division.ErrDivisionNotFound
		}
		return fmt.Errorf("failed to get division: %w", err)
	}

	if err := s.divisionRepo.Update(ctx, req); err != nil {
		if isUniqueViolation(err) {
			return division.ErrDivisionNameExists
		}
		return fmt.Errorf("failed to update division: %w", err)
	}
	return nil
}

func (s *masterServiceImpl) DeleteDivision(ctx context.Context, id string) error {
	if _, err := s.divisionRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return division.ErrDivisionNotFound
		}
		return fmt.Errorf("failed to get division: %w", err)
	}

	if err := s.divisionRepo.Delete(ctx, id); err != nil {
		if isForeignKeyViolation(err) {
			return division.ErrDivisionInUse
		}
		return fmt.Errorf("failed to delete division: %w", err)
	}
	return nil
}

// ==================== WORK SHIFT OPERATIONS ====================

func (s *masterServiceImpl) CreateShift(ctx context.Context, req shift.CreateWorkShiftRequest) (shift.WorkShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.WorkShiftResponse{}, err
	}

	created, err := s.shiftRepo.Create(ctx, shift.WorkShift{
		Name:         req.Name,
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return shift.WorkShiftResponse{}, shift.ErrShiftNameExists
		}
		return shift.WorkShiftResponse{}, fmt.Errorf("failed to create work shift: %w", err)
	}

	return shift.ToResponse(created), nil
}

func (s *masterServiceImpl) GetShift(ctx context.Context, id string) (shift.WorkShiftResponse, error) {
	entity, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.WorkShiftResponse{}, shift.ErrShiftNotFound
		}
		return shift.WorkShiftResponse{}, fmt.Errorf("failed to get work shift: %w", err)
	}

	return shift.ToResponse(entity), nil
}

func (s *masterServiceImpl) ListShifts(ctx context.Context) ([]shift.WorkShiftResponse, error) {
	shifts, err := s.shiftRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work shifts: %w", err)
	}

	responses := make([]shift.WorkShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, shift.ToResponse(sh))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateShift(ctx context.Context, req shift.UpdateWorkShiftRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.shiftRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to get work shift: %w", err)
	}

	if err := s.shiftRepo.Update(ctx, req); err != nil {
		if isUniqueViolation(err) {
			return shift.ErrShiftNameExists
		}
		return fmt.Errorf("failed to update work shift: %w", err)
	}
	return nil
}

func (s *masterServiceImpl) DeleteShift(ctx context.Context, id string) error {
	if _, err := s.shiftRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to get work shift: %w", err)
	}

	if err := s.shiftRepo.Delete(ctx, id); err != nil {
		if isForeignKeyViolation(err) {
			return shift.ErrShiftInUse
		}
		return fmt.Errorf("failed to delete work shift: %w", err)
	}
	return nil
}

// ==================== DEVICE OPERATIONS ====================

func (s *masterServiceImpl) CreateDevice(ctx context.Context, req device.CreateDeviceRequest) (device.DeviceResponse, error) {
	if err := req.Validate(); err != nil {
		return device.DeviceResponse{}, err
	}

	created, err := s.deviceRepo.Create(ctx, device.Device{
		Name:         req.Name,
		Location:     req.Location,
		SerialNumber: req.SerialNumber,
		Status:       device.StatusActive,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return device.DeviceResponse{}, device.ErrDeviceSerialExists
		}
		return device.DeviceResponse{}, fmt.Errorf("failed to create device: %w", err)
	}

	return device.ToResponse(created), nil
}

func (s *masterServiceImpl) GetDevice(ctx context.Context, id string) (device.DeviceResponse, error) {
	entity, err := s.deviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return device.DeviceResponse{}, device.ErrDeviceNotFound
		}
		return device.DeviceResponse{}, fmt.Errorf("failed to get device: %w", err)
	}

	return device.ToResponse(entity), nil
}

func (s *masterServiceImpl) ListDevices(ctx context.Context) ([]device.DeviceResponse, error) {
	devices, err := s.deviceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	responses := make([]device.DeviceResponse, 0, len(devices))
	for _, d := range devices {
		responses = append(responses, device.ToResponse(d))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateDevice(ctx context.Context, req device.UpdateDeviceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.deviceRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return device.ErrDeviceNotFound
		}
		return fmt.Errorf("failed to get device: %w", err)
	}

	if err := s.deviceRepo.Update(ctx, req); err != nil {
		return fmt.Errorf("failed to update device: %w", err)
	}
	return nil
}

func (s *masterServiceImpl) DeleteDevice(ctx context.Context, id string) error {
	if _, err := s.deviceRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return device.ErrDeviceNotFound
		}
		return fmt.Errorf("failed to get device: %w", err)
	}

	if err := s.deviceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}
	return nil
}
