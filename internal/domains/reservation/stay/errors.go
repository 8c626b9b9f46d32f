package stay

import (
	"campground/shared/failure"
	"fmt"
	"net/http"
)

// Admission and lifecycle rejections are typed so callers can render precise
// messages and tests can assert on the exact kind; each carries the HTTP
// status it maps to through failure.StatusCoder.

var (
	// ErrInvalidDateRange rejects requests whose check-in date is not
	// strictly before the check-out date.
	ErrInvalidDateRange = failure.BadRequestFromString("check-in date must be before check-out date")

	// ErrCheckInPast rejects requests whose check-in date is already behind
	// the evaluation date; same-day check-in is allowed.
	ErrCheckInPast = failure.BadRequestFromString("check-in date must not be in the past")

	// ErrCampsiteInUse refuses campsite deletion while any reservation on it
	// is still pending or active.
	ErrCampsiteInUse = failure.Conflict("campsite has reservations that have not yet completed")
)

// DurationExceededError rejects stays longer than the campsite category's
// maximum, carrying both sides of the comparison.
type DurationExceededError struct {
	RequestedNights int
	MaxNights       int
}

func (e *DurationExceededError) Error() string {
	return fmt.Sprintf("requested stay of %d nights exceeds the %d-night maximum for this campsite", e.RequestedNights, e.MaxNights)
}

func (e *DurationExceededError) StatusCode() int {
	return http.StatusBadRequest
}

// ConflictError rejects a request that overlaps an existing non-terminal
// reservation, carrying the conflicting range so the caller can show why.
type ConflictError struct {
	ConflictingRange Range
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("requested dates conflict with an existing reservation %s", e.ConflictingRange)
}

func (e *ConflictError) StatusCode() int {
	return http.StatusConflict
}

// AdmissionRaceError reports that a request passed the conflict check but a
// concurrent request won the storage-level overlap constraint. Unlike
// ConflictError this is a transient race outcome; the caller may retry once
// against fresh data.
type AdmissionRaceError struct {
	CampsiteID string
}

func (e *AdmissionRaceError) Error() string {
	return "requested dates were taken by a concurrent reservation"
}

func (e *AdmissionRaceError) StatusCode() int {
	return http.StatusConflict
}

// CancellationNotAllowedError rejects a non-privileged cancellation of a
// reservation that is no longer pending.
type CancellationNotAllowedError struct {
	State State
}

func (e *CancellationNotAllowedError) Error() string {
	return fmt.Sprintf("reservation can no longer be cancelled: state is %s", e.State)
}

func (e *CancellationNotAllowedError) StatusCode() int {
	return http.StatusForbidden
}
