package payrollerrors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidRunID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll run id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"invalid pay period, expected YYYY-MM-DD dates with end not before start",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrRunNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll run not found",
		http.StatusNotFound,
	)
	ErrPeriodOverlap = apperror.New(
		apperror.CodeConflict,
		"a payroll run already exists for this employee in an overlapping period",
		http.StatusConflict,
	)
	ErrNotDraft = apperror.New(
		apperror.CodeInvalidState,
		"only draft payroll runs can be deleted",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"payroll run status does not allow this transition",
		http.StatusUnprocessableEntity,
	)
)

// RejectedInput carries the validator's blocking messages back to the client.
func RejectedInput(messages []string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("payroll input rejected: %s", strings.Join(messages, "; ")),
		http.StatusUnprocessableEntity,
	)
}
