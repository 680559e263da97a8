package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/presensia/presensia-backend-go/internal/domain/employee"
	"github.com/presensia/presensia-backend-go/internal/domain/master/division"
	"github.com/presensia/presensia-backend-go/internal/domain/master/shift"
	"github.com/presensia/presensia-backend-go/internal/pkg/database"
	"github.com/presensia/presensia-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	divisionRepo division.DivisionRepository
	shiftRepo    shift.WorkShiftRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	divisionRepo division.DivisionRepository,
	shiftRepo shift.WorkShiftRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		divisionRepo: divisionRepo,
		shiftRepo:    shiftRepo,
	}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.divisionRepo.GetByID(ctx, req.DivisionID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, division.ErrDivisionNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get division: %w", err)
	}
	if _, err := s.shiftRepo.GetByID(ctx, req.ShiftID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, shift.ErrShiftNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get shift: %w", err)
	}

	hireDate, _ := validator.IsValidDate(req.HireDate)

	entity := employee.Employee{
		EmployeeCode: req.EmployeeCode,
		FullName:     req.FullName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		DivisionID:   req.DivisionID,
		ShiftID:      req.ShiftID,
		RFIDCardUID:  req.RFIDCardUID,
		HireDate:     hireDate,
		Status:       employee.StatusActive,
		BasicSalary:  req.BasicSalary,
	}

	created, err := s.employeeRepo.Create(ctx, entity)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return employee.ToResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeesResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}

	return employee.ListEmployeesResponse{
		Data:       responses,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.DivisionID != nil {
		if _, err := s.divisionRepo.GetByID(ctx, *req.DivisionID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return employee.EmployeeResponse{}, division.ErrDivisionNotFound
			}
			return employee.EmployeeResponse{}, fmt.Errorf("failed to get division: %w", err)
		}
	}
	if req.ShiftID != nil {
		if _, err := s.shiftRepo.GetByID(ctx, *req.ShiftID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return employee.EmployeeResponse{}, shift.ErrShiftNotFound
			}
			return employee.EmployeeResponse{}, fmt.Errorf("failed to get shift: %w", err)
		}
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get updated employee: %w", err)
	}

	return employee.ToResponse(updated), nil
}

// Delete soft-deletes an employee. Historical attendance and calculations stay
// attached to the row.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
