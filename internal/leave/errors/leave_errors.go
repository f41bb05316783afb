package leaveerrors

import (
	"net/http"

	"go-portal/internal/shared/apperror"
)

var (
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave request id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"leave request has already been decided",
		http.StatusConflict,
	)
	ErrNotAssignedApprover = apperror.New(
		apperror.CodeForbidden,
		"only the assigned approver or an admin may decide this request",
		http.StatusForbidden,
	)
	ErrRequesterNotFound = apperror.New(
		apperror.CodeNotFound,
		"requesting employee not found",
		http.StatusNotFound,
	)
)
