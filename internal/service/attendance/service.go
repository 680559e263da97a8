package attendance

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/presensia/presensia-backend-go/internal/domain/attendance"
	"github.com/presensia/presensia-backend-go/internal/domain/employee"
	"github.com/presensia/presensia-backend-go/internal/domain/leave"
	"github.com/presensia/presensia-backend-go/internal/pkg/database"
	"github.com/presensia/presensia-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	leaveRepo      leave.LeaveRequestRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRequestRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		leaveRepo:      leaveRepo,
	}
}

func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	entity := req.ToEntity()

	// One record per employee per date.
	if _, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, entity.EmployeeID, entity.Date); err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceExists
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}

	if entity.LeaveRequestID != nil {
		if _, err := s.leaveRepo.GetByID(ctx, *entity.LeaveRequestID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return attendance.AttendanceResponse{}, leave.ErrLeaveRequestNotFound
			}
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to get leave request: %w", err)
		}
	}

	created, err := s.attendanceRepo.Create(ctx, entity)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return attendance.ToResponse(created), nil
}

func (s *AttendanceServiceImpl) GetByID(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return attendance.ToResponse(record), nil
}

func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	applyUpdate(&record, req)

	if record.Type == attendance.TypeLeave && record.LeaveRequestID == nil {
		return attendance.AttendanceResponse{}, validator.ValidationErrors{
			{Field: "leave_request_id", Message: "is required for leave records"},
		}
	}
	if record.LeaveRequestID != nil {
		if _, err := s.leaveRepo.GetByID(ctx, *record.LeaveRequestID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return attendance.AttendanceResponse{}, leave.ErrLeaveRequestNotFound
			}
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to get leave request: %w", err)
		}
	}

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return attendance.ToResponse(record), nil
}

func applyUpdate(record *attendance.Attendance, req attendance.UpdateAttendanceRequest) {
	if req.Type != nil {
		record.Type = attendance.AttendanceType(*req.Type)
	}
	if req.CheckInTime != nil {
		if t, ok := validator.IsValidDateTime(*req.CheckInTime); ok {
			record.CheckInTime = &t
		}
	}
	if req.CheckOutTime != nil {
		if t, ok := validator.IsValidDateTime(*req.CheckOutTime); ok {
			record.CheckOutTime = &t
		}
	}
	if req.CheckInStatus != nil {
		record.CheckInStatus = attendance.CheckInStatus(*req.CheckInStatus)
	}
	if req.CheckOutStatus != nil {
		record.CheckOutStatus = attendance.CheckOutStatus(*req.CheckOutStatus)
	}
	if req.LeaveRequestID != nil {
		record.LeaveRequestID = req.LeaveRequestID
	}
}

func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateTo.Before(*filter.DateFrom) {
		return attendance.ListAttendanceResponse{}, attendance.ErrInvalidDateRange
	}

	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.ToResponse(record))
	}

	return attendance.ListAttendanceResponse{
		Data:       responses,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string, from, to string) ([]attendance.AttendanceResponse, error) {
	fromDate, ok := validator.IsValidDate(from)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "from", Message: "must be in YYYY-MM-DD format"}}
	}
	toDate, ok := validator.IsValidDate(to)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "to", Message: "must be in YYYY-MM-DD format"}}
	}
	if toDate.Before(fromDate) {
		return nil, attendance.ErrInvalidDateRange
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	records, err := s.attendanceRepo.GetByEmployeeAndRange(ctx, employeeID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.ToResponse(record))
	}
	return responses, nil
}
