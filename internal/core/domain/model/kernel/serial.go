package kernel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// serialPrefix is the fixed prefix of every container serial number.
const serialPrefix = "KON"

// ErrSerialNumberIsNotConstructed is returned when attempting to use an
// improperly initialized SerialNumber. Serial numbers must be created via
// NewSerialNumber or SerialNumberFromString.
var ErrSerialNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"SerialNumber must be created via NewSerialNumber or SerialNumberFromString constructors")

// SerialNumber identifies a cargo container. It is an immutable value object
// with the textual form KON-<TypeCode>-<sequence>, e.g. "KON-L-17".
//
// The type code names the container kind ("L" liquid, "G" gas,
// "R" refrigerated) and the sequence comes from a SerialSequence generator,
// so serial numbers issued by one generator are unique and ever-increasing.
//
// Example:
//
//	serial, err := kernel.NewSerialNumber("L", sequence.Next())
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(serial) // Output: KON-L-1
type SerialNumber struct { //nolint:recvcheck //using for validation
	typeCode string
	sequence uint64
	guard    guard.ConstructorGuard
}

// NewSerialNumber creates a serial number from a container type code and a
// sequence value. The type code must be non-empty, upper-case letters only;
// the sequence must be greater than zero.
func NewSerialNumber(typeCode string, sequence uint64) (SerialNumber, error) {
	serial := SerialNumber{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(serial.setTypeCode(typeCode), serial.setSequence(sequence)); err != nil {
		return SerialNumber{}, err
	}

	return serial, nil
}

// SerialNumberFromString parses the textual form KON-<TypeCode>-<sequence>.
// It is used when reconstructing containers from persistence or when callers
// address containers by the serial printed on them.
func SerialNumberFromString(s string) (SerialNumber, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || parts[0] != serialPrefix {
		return SerialNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"serialNumber",
			fmt.Errorf("%q does not match %s-<TypeCode>-<sequence>", s, serialPrefix),
		)
	}

	sequence, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return SerialNumber{}, errs.NewValueIsInvalidErrorWithCause("serialNumber", err)
	}

	return NewSerialNumber(parts[1], sequence)
}

// String returns the canonical textual form of the serial number.
// The zero value renders as "KON--0" and fails Validate.
func (s SerialNumber) String() string {
	return fmt.Sprintf("%s-%s-%d", serialPrefix, s.typeCode, s.sequence)
}

// TypeCode returns the container type code embedded in the serial number.
func (s SerialNumber) TypeCode() string {
	return s.typeCode
}

// Sequence returns the monotonic sequence component of the serial number.
func (s SerialNumber) Sequence() uint64 {
	return s.sequence
}

// IsEqual compares two serial numbers by value.
func (s SerialNumber) IsEqual(other SerialNumber) bool {
	return s.typeCode == other.typeCode && s.sequence == other.sequence
}

// Validate checks that the serial number was built via a constructor.
func (s SerialNumber) Validate() error {
	return s.guard.Validate(ErrSerialNumberIsNotConstructed)
}

func (s *SerialNumber) setTypeCode(typeCode string) error {
	if typeCode == "" {
		return errs.NewValueIsRequiredError("typeCode")
	}
	for _, r := range typeCode {
		if r < 'A' || r > 'Z' {
			return errs.NewValueIsInvalidErrorWithCause(
				"typeCode",
				fmt.Errorf("%q must contain upper-case letters only", typeCode),
			)
		}
	}

	s.typeCode = typeCode
	return nil
}

func (s *SerialNumber) setSequence(sequence uint64) error {
	if sequence == 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"sequence",
			fmt.Errorf("%d is not greater than 0", sequence),
		)
	}

	s.sequence = sequence
	return nil
}

// SerialSequence issues monotonically increasing sequence values for serial
// numbers. It replaces hidden process-wide state with an explicit dependency:
// the container factory owns a generator, and tests create fresh instances
// for deterministic numbering.
//
// SerialSequence is safe for concurrent use.
type SerialSequence struct {
	counter atomic.Uint64
}

// NewSerialSequence creates a generator whose first Next call returns 1.
func NewSerialSequence() *SerialSequence {
	return &SerialSequence{}
}

// NewSerialSequenceFrom creates a generator resuming after the given last
// issued value. Used at startup to continue numbering past persisted serials.
func NewSerialSequenceFrom(last uint64) *SerialSequence {
	sequence := &SerialSequence{}
	sequence.counter.Store(last)
	return sequence
}

// Next returns the next sequence value. Values are unique and strictly
// increasing for the lifetime of the generator.
func (s *SerialSequence) Next() uint64 {
	return s.counter.Add(1)
}
