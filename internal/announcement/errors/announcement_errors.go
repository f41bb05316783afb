package announcementerrors

import (
	"net/http"

	"go-portal/internal/shared/apperror"
)

var (
	ErrInvalidAnnouncementID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid announcement id",
		http.StatusBadRequest,
	)
	ErrAnnouncementNotFound = apperror.New(
		apperror.CodeNotFound,
		"announcement not found",
		http.StatusNotFound,
	)
)
