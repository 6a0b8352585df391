package usecase

import "errors"

// Sentinel errors the delivery layer maps to HTTP statuses with errors.Is.
var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInternal            = errors.New("internal error")

	ErrJobNotFound         = errors.New("job not found")
	ErrCandidateNotFound   = errors.New("candidate not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrMeetingNotFound     = errors.New("meeting not found")

	// Search-specific failures. ErrInvalidFilter covers malformed filter,
	// sort and pagination input; ErrDataUnavailable means the candidate
	// snapshot could not be loaded at all.
	ErrInvalidFilter   = errors.New("invalid filter")
	ErrDataUnavailable = errors.New("candidate data unavailable")

	ErrJobNotOpen             = errors.New("job is not open for applications")
	ErrDuplicateApplication   = errors.New("candidate already applied to this job")
	ErrInvalidStageTransition = errors.New("invalid stage transition")
	ErrMeetingOverlap         = errors.New("meeting overlaps an existing one")
)
