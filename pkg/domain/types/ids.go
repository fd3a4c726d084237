package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

type (
	ScanID    string
	FindingID string
	RequestID string
)

func NewScanID() ScanID {
	return ScanID(uuid.NewString())
}

func (x ScanID) String() string {
	return string(x)
}

func NewFindingID() FindingID {
	return FindingID(uuid.NewString())
}

func (x FindingID) String() string {
	return string(x)
}

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

// ParseScanID validates that the given string is a well-formed scan ID.
func ParseScanID(s string) (ScanID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", goerr.Wrap(ErrValidationFailed, "invalid scan ID", goerr.V("value", s))
	}
	return ScanID(s), nil
}

// ParseFindingID validates that the given string is a well-formed finding ID.
func ParseFindingID(s string) (FindingID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", goerr.Wrap(ErrValidationFailed, "invalid finding ID", goerr.V("value", s))
	}
	return FindingID(s), nil
}
