package reporterrors

import (
	"net/http"

	"go-portal/internal/shared/apperror"
)

var (
	ErrInvalidReportID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid report id",
		http.StatusBadRequest,
	)
	ErrReportNotFound = apperror.New(
		apperror.CodeNotFound,
		"report not found",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"report has already been decided",
		http.StatusConflict,
	)
	ErrNotReportOwner = apperror.New(
		apperror.CodeForbidden,
		"you do not have access to this report",
		http.StatusForbidden,
	)
	ErrNotReportApprover = apperror.New(
		apperror.CodeForbidden,
		"you are not allowed to decide this report",
		http.StatusForbidden,
	)
)
