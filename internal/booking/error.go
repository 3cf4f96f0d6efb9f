package booking

import (
	"errors"
	"fmt"
)

var ErrAlreadyBooked = errors.New("room already booked for date")

type RejectReason string

const (
	ReasonRoomNotFound    RejectReason = "room_not_found"
	ReasonDateUnavailable RejectReason = "date_unavailable"
	ReasonInvalidGuest    RejectReason = "invalid_guest"
)

// RejectError is a typed booking rejection. Nothing is written to the
// store when one is returned.
type RejectError struct {
	reason RejectReason
	fields map[string][]string
}

func newRejectError(reason RejectReason) *RejectError {
	return &RejectError{
		reason: reason,
		fields: make(map[string][]string),
	}
}

func IsRejectError(err error) *RejectError {
	if err == nil {
		return nil
	}

	var rejectError *RejectError

	if errors.As(err, &rejectError) {
		return rejectError
	}

	return nil
}

func (e *RejectError) addField(field, msg string) {
	e.fields[field] = append(e.fields[field], msg)
}

func (e *RejectError) Error() string {
	if len(e.fields) > 0 {
		return fmt.Sprintf("booking rejected (%s): %+v", e.reason, e.fields)
	}

	return fmt.Sprintf("booking rejected (%s)", e.reason)
}

func (e *RejectError) Reason() RejectReason {
	return e.reason
}

func (e *RejectError) Fields() map[string][]string {
	return e.fields
}

// Message is the actionable text shown to the guest.
func (e *RejectError) Message() string {
	switch e.reason {
	case ReasonRoomNotFound:
		return "this property does not exist"
	case ReasonDateUnavailable:
		return "date no longer available"
	case ReasonInvalidGuest:
		return "please check your contact details"
	default:
		return "booking could not be completed"
	}
}
