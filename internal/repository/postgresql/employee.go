package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/presensia/presensia-backend-go/internal/domain/employee"
	"github.com/presensia/presensia-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.employee_code, e.full_name, e.email, e.phone_number,
	e.division_id, e.shift_id, e.rfid_card_uid, e.hire_date, e.status,
	e.basic_salary, e.created_at, e.updated_at, e.deleted_at,
	d.name AS division_name, s.name AS shift_name
`

func scanEmployee(row interface{ Scan(dest ...any) error }) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.EmployeeCode, &e.FullName, &e.Email, &e.PhoneNumber,
		&e.DivisionID, &e.ShiftID, &e.RFIDCardUID, &e.HireDate, &e.Status,
		&e.BasicSalary, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
		&e.DivisionName, &e.ShiftName,
	)
	return e, err
}

func (r *employeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if e.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to generate employee id: %w", err)
		}
		e.ID = id.String()
	}

	query := `
		INSERT INTO employees (
			id, employee_code, full_name, email, phone_number,
			division_id, shift_id, rfid_card_uid, hire_date, status, basic_salary
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.ID, e.EmployeeCode, e.FullName, e.Email, e.PhoneNumber,
		e.DivisionID, e.ShiftID, e.RFIDCardUID, e.HireDate, e.Status, e.BasicSalary,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "rfid") {
				return employee.Employee{}, employee.ErrRFIDCardExists
			}
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN divisions d ON d.id = e.division_id
		JOIN work_shifts s ON s.id = e.shift_id
		WHERE e.id = $1 AND e.deleted_at IS NULL
	`

	return scanEmployee(q.QueryRow(ctx, query, id))
}

func (r *employeeRepository) GetByIDs(ctx context.Context, ids []string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN divisions d ON d.id = e.division_id
		JOIN work_shifts s ON s.id = e.shift_id
		WHERE e.id = ANY($1) AND e.deleted_at IS NULL
		ORDER BY e.employee_code
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees by ids: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) GetActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN divisions d ON d.id = e.division_id
		JOIN work_shifts s ON s.id = e.shift_id
		WHERE e.status = 'active' AND e.deleted_at IS NULL
		ORDER BY e.employee_code
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"e.deleted_at IS NULL"}
	args := []any{}
	argPos := 1

	if filter.DivisionID != nil {
		conditions = append(conditions, fmt.Sprintf("e.division_id = $%d", argPos))
		args = append(args, *filter.DivisionID)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("e.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.Search != nil {
		conditions = append(conditions, fmt.Sprintf("(e.full_name ILIKE $%d OR e.employee_code ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+*filter.Search+"%")
		argPos++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM employees e " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees e
		JOIN divisions d ON d.id = e.division_id
		JOIN work_shifts s ON s.id = e.shift_id
		%s
		ORDER BY e.employee_code
		LIMIT $%d OFFSET $%d
	`, employeeColumns, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, total, rows.Err()
}

func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []any{}
	argPos := 1

	addSet := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if req.FullName != nil {
		addSet("full_name", *req.FullName)
	}
	if req.Email != nil {
		addSet("email", *req.Email)
	}
	if req.PhoneNumber != nil {
		addSet("phone_number", *req.PhoneNumber)
	}
	if req.DivisionID != nil {
		addSet("division_id", *req.DivisionID)
	}
	if req.ShiftID != nil {
		addSet("shift_id", *req.ShiftID)
	}
	if req.RFIDCardUID != nil {
		addSet("rfid_card_uid", *req.RFIDCardUID)
	}
	if req.Status != nil {
		addSet("status", *req.Status)
	}
	if req.BasicSalary != nil {
		addSet("basic_salary", *req.BasicSalary)
	}

	query := fmt.Sprintf(`
		UPDATE employees SET %s
		WHERE id = $%d AND deleted_at IS NULL
	`, strings.Join(sets, ", "), argPos)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "rfid") {
			return employee.ErrRFIDCardExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET deleted_at = NOW(), status = 'resigned', updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
