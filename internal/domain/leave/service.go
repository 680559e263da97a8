package leave

import "context"

type LeaveService interface {
	Create(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	GetByID(ctx context.Context, id string) (LeaveRequestResponse, error)
	List(ctx context.Context, filter LeaveRequestFilter) (ListLeaveRequestsResponse, error)
	Approve(ctx context.Context, id string) (LeaveRequestResponse, error)
	Reject(ctx context.Context, req RejectLeaveRequestRequest) (LeaveRequestResponse, error)
}
