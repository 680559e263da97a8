package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/presensia/presensia-backend-go/internal/domain/leave"
	"github.com/presensia/presensia-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.start_date, lr.end_date, lr.reason,
	lr.status, lr.reviewed_by, lr.reviewed_at, lr.rejection_reason,
	lr.submitted_at, lr.created_at, lr.updated_at,
	e.full_name AS employee_name, e.employee_code AS employee_code
`

func scanLeaveRequest(row interface{ Scan(dest ...any) error }) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.StartDate, &lr.EndDate, &lr.Reason,
		&lr.Status, &lr.ReviewedBy, &lr.ReviewedAt, &lr.RejectionReason,
		&lr.SubmittedAt, &lr.CreatedAt, &lr.UpdatedAt,
		&lr.EmployeeName, &lr.EmployeeCode,
	)
	return lr, err
}

func (r *leaveRequestRepository) Create(ctx context.Context, lr leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if lr.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return leave.LeaveRequest{}, fmt.Errorf("failed to generate leave request id: %w", err)
		}
		lr.ID = id.String()
	}

	query := `
		INSERT INTO leave_requests (id, employee_id, start_date, end_date, reason, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		lr.ID, lr.EmployeeID, lr.StartDate, lr.EndDate, lr.Reason, lr.Status, lr.SubmittedAt,
	).Scan(&lr.CreatedAt, &lr.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return lr, nil
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.id = $1
	`

	return scanLeaveRequest(q.QueryRow(ctx, query, id))
}

func (r *leaveRequestRepository) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argPos := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("lr.employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM leave_requests lr " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		%s
		ORDER BY lr.submitted_at DESC
		LIMIT $%d OFFSET $%d
	`, leaveRequestColumns, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}
	return requests, total, rows.Err()
}

func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, lr leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, reviewed_by = $3, reviewed_at = $4, rejection_reason = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, lr.ID, lr.Status, lr.ReviewedBy, lr.ReviewedAt, lr.RejectionReason)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

func (r *leaveRequestRepository) GetStatusesByIDs(ctx context.Context, ids []string) (map[string]leave.RequestStatus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, status
		FROM leave_requests
		WHERE id = ANY($1)
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave request statuses: %w", err)
	}
	defer rows.Close()

	statuses := make(map[string]leave.RequestStatus, len(ids))
	for rows.Next() {
		var id string
		var status leave.RequestStatus
		if err := rows.Scan(&id, &status); err != nil {
			return nil, fmt.Errorf("failed to scan leave request status: %w", err)
		}
		statuses[id] = status
	}
	return statuses, rows.Err()
}
