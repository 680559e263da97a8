package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/presensia/presensia-backend-go/internal/domain/master/shift"
	"github.com/presensia/presensia-backend-go/internal/pkg/database"
)

type workShiftRepository struct {
	db *database.DB
}

func NewWorkShiftRepository(db *database.DB) shift.WorkShiftRepository {
	return &workShiftRepository{db: db}
}

func (r *workShiftRepository) Create(ctx context.Context, s shift.WorkShift) (shift.WorkShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_shifts (id, name, check_in_time, check_out_time)
		VALUES (uuidv7(), $1, $2, $3)
		RETURNING id, name, check_in_time, check_out_time, created_at, updated_at
	`

	var created shift.WorkShift
	err := q.QueryRow(ctx, query, s.Name, s.CheckInTime, s.CheckOutTime).Scan(
		&created.ID, &created.Name, &created.CheckInTime, &created.CheckOutTime,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return shift.WorkShift{}, err
	}

	return created, nil
}

func (r *workShiftRepository) GetByID(ctx context.Context, id string) (shift.WorkShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, check_in_time, check_out_time, created_at, updated_at
		FROM work_shifts
		WHERE id = $1
	`

	var s shift.WorkShift
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.CheckInTime, &s.CheckOutTime, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return shift.WorkShift{}, err
	}

	return s, nil
}

func (r *workShiftRepository) List(ctx context.Context) ([]shift.WorkShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, check_in_time, check_out_time, created_at, updated_at
		FROM work_shifts
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list work shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.WorkShift
	for rows.Next() {
		var s shift.WorkShift
		if err := rows.Scan(&s.ID, &s.Name, &s.CheckInTime, &s.CheckOutTime, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan work shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

func (r *workShiftRepository) Update(ctx context.Context, req shift.UpdateWorkShiftRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []any{}
	argPos := 1

	if req.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *req.Name)
		argPos++
	}
	if req.CheckInTime != nil {
		sets = append(sets, fmt.Sprintf("check_in_time = $%d", argPos))
		args = append(args, *req.CheckInTime)
		argPos++
	}
	if req.CheckOutTime != nil {
		sets = append(sets, fmt.Sprintf("check_out_time = $%d", argPos))
		args = append(args, *req.CheckOutTime)
		argPos++
	}

	query := fmt.Sprintf("UPDATE work_shifts SET %s WHERE id = $%d", strings.Join(sets, ", "), argPos)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

func (r *workShiftRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM work_shifts WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}
