// Package domain defines the job application entities and the status enumeration.
//
// Status is generated by go-pkgz/enum from the unexported status type below, the generated
// code lives in status_enum.go. Values start from one, so the zero Status means "not set".
//
// Usage:
//
//	status := domain.StatusInterviewing
//	fmt.Println(status.String()) // "interviewing"
//
//	parsed, err := domain.StatusFromToken("offer")
//	if err != nil {
//	    // errors.Is(err, domain.ErrInvalidStatus) == true
//	}
//
// To regenerate after modifications:
//
//	go generate ./app/domain
package domain

import (
	"errors"
	"fmt"
)

//go:generate go run github.com/go-pkgz/enum@latest -type status -lower

// status is the input for the enum generator, use the exported Status in actual code
type status int

const (
	statusApplied status = iota + 1
	statusInterviewing
	statusOffer
	statusRejected
)

// ErrInvalidStatus is returned for any token which is not one of the known statuses
var ErrInvalidStatus = errors.New("invalid status")

// StatusFromToken is a strict ParseStatus, errors are marked with ErrInvalidStatus.
// Matching is case-sensitive, unknown tokens never fall back to a default.
func StatusFromToken(v string) (Status, error) {
	s, err := ParseStatus(v)
	if err != nil {
		return Status{}, fmt.Errorf("%w %q", ErrInvalidStatus, v)
	}
	return s, nil
}

// IsZero reports whether the status is unset
func (e Status) IsZero() bool { return e.value == 0 }

// OrDefault returns StatusApplied for the zero value and the status itself otherwise
func (e Status) OrDefault() Status {
	if e.IsZero() {
		return StatusApplied
	}
	return e
}

// UnmarshalFlag implements flags.Unmarshaler, so status can be used as a go-flags option
func (e *Status) UnmarshalFlag(value string) error {
	s, err := StatusFromToken(value)
	if err != nil {
		return err
	}
	*e = s
	return nil
}

// MarshalFlag implements flags.Marshaler, zero status is rendered empty
func (e Status) MarshalFlag() (string, error) { return e.name, nil }
