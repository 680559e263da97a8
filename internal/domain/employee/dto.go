package employee

import (
	"github.com/shopspring/decimal"

	"github.com/presensia/presensia-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode string           `json:"employee_code"`
	FullName     string           `json:"full_name"`
	Email        *string          `json:"email,omitempty"`
	PhoneNumber  *string          `json:"phone_number,omitempty"`
	DivisionID   string           `json:"division_id"`
	ShiftID      string           `json:"shift_id"`
	RFIDCardUID  *string          `json:"rfid_card_uid,omitempty"`
	HireDate     string           `json:"hire_date"`
	BasicSalary  *decimal.Decimal `json:"basic_salary,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "must match the NNNN-NNNN format"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if len(r.FullName) > 255 {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not exceed 255 characters"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.DivisionID) {
		errs = append(errs, validator.ValidationError{Field: "division_id", Message: "is required"})
	}
	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{Field: "shift_id", Message: "is required"})
	}
	if r.RFIDCardUID != nil && !validator.IsValidRFIDUID(*r.RFIDCardUID) {
		errs = append(errs, validator.ValidationError{Field: "rfid_card_uid", Message: "must be 8-20 uppercase hex digits"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be in YYYY-MM-DD format"})
	}
	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string           `json:"-"`
	FullName    *string          `json:"full_name,omitempty"`
	Email       *string          `json:"email,omitempty"`
	PhoneNumber *string          `json:"phone_number,omitempty"`
	DivisionID  *string          `json:"division_id,omitempty"`
	ShiftID     *string          `json:"shift_id,omitempty"`
	RFIDCardUID *string          `json:"rfid_card_uid,omitempty"`
	Status      *string          `json:"status,omitempty"`
	BasicSalary *decimal.Decimal `json:"basic_salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.RFIDCardUID != nil && !validator.IsValidRFIDUID(*r.RFIDCardUID) {
		errs = append(errs, validator.ValidationError{Field: "rfid_card_uid", Message: "must be 8-20 uppercase hex digits"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusResigned)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be active or resigned"})
	}
	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string           `json:"id"`
	EmployeeCode string           `json:"employee_code"`
	FullName     string           `json:"full_name"`
	Email        *string          `json:"email,omitempty"`
	PhoneNumber  *string          `json:"phone_number,omitempty"`
	DivisionID   string           `json:"division_id"`
	DivisionName *string          `json:"division_name,omitempty"`
	ShiftID      string           `json:"shift_id"`
	ShiftName    *string          `json:"shift_name,omitempty"`
	RFIDCardUID  *string          `json:"rfid_card_uid,omitempty"`
	HireDate     string           `json:"hire_date"`
	Status       string           `json:"status"`
	BasicSalary  *decimal.Decimal `json:"basic_salary,omitempty"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		FullName:     e.FullName,
		Email:        e.Email,
		PhoneNumber:  e.PhoneNumber,
		DivisionID:   e.DivisionID,
		DivisionName: e.DivisionName,
		ShiftID:      e.ShiftID,
		ShiftName:    e.ShiftName,
		RFIDCardUID:  e.RFIDCardUID,
		HireDate:     e.HireDate.Format("2006-01-02"),
		Status:       string(e.Status),
		BasicSalary:  e.BasicSalary,
	}
}

type EmployeeFilter struct {
	DivisionID *string
	Status     *string
	Search     *string // matches name or employee code
	Page       int
	Limit      int
}

type ListEmployeesResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
