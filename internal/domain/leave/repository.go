package leave

import "context"

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
	UpdateStatus(ctx context.Context, request LeaveRequest) error

	// GetStatusesByIDs resolves leave-request linkage for the payroll engine:
	// request id -> current status. Unknown ids are simply absent from the map.
	GetStatusesByIDs(ctx context.Context, ids []string) (map[string]RequestStatus, error)
}
