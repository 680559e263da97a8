package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/presensia/presensia-backend-go/internal/domain/master/division"
	"github.com/presensia/presensia-backend-go/internal/pkg/database"
)

type divisionRepository struct {
	db *database.DB
}

func NewDivisionRepository(db *database.DB) division.DivisionRepository {
	return &divisionRepository{db: db}
}

func (r *divisionRepository) Create(ctx context.Context, d division.Division) (division.Division, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO divisions (id, name, description)
		VALUES (uuidv7(), $1, $2)
		RETURNING id, name, description, created_at, updated_at
	`

	var created division.Division
	err := q.QueryRow(ctx, query, d.Name, d.Description).Scan(
		&created.ID, &created.Name, &created.Description, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return division.Division{}, err
	}

	return created, nil
}

func (r *divisionRepository) GetByID(ctx context.Context, id string) (division.Division, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, d.description, d.created_at, d.updated_at,
			   COUNT(e.id)::int AS employee_count
		FROM divisions d
		LEFT JOIN employees e ON e.division_id = d.id AND e.deleted_at IS NULL
		WHERE d.id = $1
		GROUP BY d.id
	`

	var d division.Division
	err := q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt, &d.EmployeeCount,
	)
	if err != nil {
		return division.Division{}, err
	}

	return d, nil
}

func (r *divisionRepository) List(ctx context.Context) ([]division.Division, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, d.description, d.created_at, d.updated_at,
			   COUNT(e.id)::int AS employee_count
		FROM divisions d
		LEFT JOIN employees e ON e.division_id = d.id AND e.deleted_at IS NULL
		GROUP BY d.id
		ORDER BY d.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list divisions: %w", err)
	}
	defer rows.Close()

	var divisions []division.Division
	for rows.Next() {
		var d division.Division
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt, &d.EmployeeCount); err != nil {
			return nil, fmt.Errorf("failed to scan division: %w", err)
		}
		divisions = append(divisions, d)
	}
	return divisions, rows.Err()
}

func (r *divisionRepository) Update(ctx context.Context, req division.UpdateDivisionRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []any{}
	argPos := 1

	if req.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *req.Name)
		argPos++
	}
	if req.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", argPos))
		args = append(args, *req.Description)
		argPos++
	}

	query := fmt.Sprintf("UPDATE divisions SET %s WHERE id = $%d", strings.Join(sets, ", "), argPos)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return division.ErrDivisionNotFound
	}
	return nil
}

func (r *divisionRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM divisions WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return division.ErrDivisionNotFound
	}
	return nil
}
