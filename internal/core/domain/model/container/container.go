package container

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	// ErrOverfill is returned when a load request exceeds the capacity rule
	// of the container's kind. It is always surfaced to the caller; for
	// hazard-capable kinds the rejection is preceded by a hazard notification.
	ErrOverfill = errors.New("load mass exceeds container capacity")

	// ErrContainerIsNotConstructed is returned when using a container that was
	// not built through the Factory.
	ErrContainerIsNotConstructed = errors.New("containers must be created via the container Factory")
)

// Container is the behavior shared by every cargo container variant.
// The variant set is closed: LiquidContainer, GasContainer, and
// RefrigeratedContainer are the only implementations.
//
// Identity is the serial number assigned at construction. Dimensions, tare
// weight, and max payload are immutable; only the load mass changes, through
// Load and Empty. The total weight is always derived, never stored.
type Container interface {
	// SerialNumber returns the container's unique identity.
	SerialNumber() kernel.SerialNumber

	// Kind returns the variant tag.
	Kind() Kind

	// Height returns the container height in centimeters.
	Height() float64

	// Depth returns the container depth in centimeters.
	Depth() float64

	// TareWeight returns the empty weight in kilograms.
	TareWeight() float64

	// MaxPayload returns the nominal payload limit in kilograms.
	// Variants may enforce a tighter effective cap in Load.
	MaxPayload() float64

	// LoadMass returns the currently loaded cargo mass in kilograms.
	LoadMass() float64

	// TotalWeight returns tare weight plus load mass in kilograms.
	TotalWeight() float64

	// Load replaces the current load mass with the given mass.
	// Fails with ErrOverfill when the mass exceeds the variant's capacity rule.
	Load(mass float64) error

	// Empty unloads the container. Gas containers retain a residual fraction.
	Empty()

	// Info returns a one-line human-readable summary of the container state.
	Info() string

	// Validate reports whether the container was properly constructed.
	Validate() error
}

// HazardNotifier is the optional capability carried by container variants
// that can hold dangerous cargo. Callers may type-assert a Container to this
// interface to trigger a warning explicitly; Load invokes it on overfill.
type HazardNotifier interface {
	NotifyHazard()
}

// Notifier receives hazard warnings emitted by containers.
// Implementations decide where the warning goes (log, console, alerting).
type Notifier interface {
	NotifyHazard(kind Kind, serial kernel.SerialNumber)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(kind Kind, serial kernel.SerialNumber)

// NotifyHazard calls f.
func (f NotifierFunc) NotifyHazard(kind Kind, serial kernel.SerialNumber) {
	f(kind, serial)
}

// NewLogNotifier returns a Notifier that writes hazard warnings to the given
// slog logger in the form "Hazard warning in <kind> container <serial>".
func NewLogNotifier(logger *slog.Logger) Notifier {
	return NotifierFunc(func(kind Kind, serial kernel.SerialNumber) {
		logger.Warn(fmt.Sprintf("Hazard warning in %s container %s",
			strings.ToLower(kind.String()), serial))
	})
}

// base carries the state and default behavior shared by all variants.
// Variants embed it and override Load (and Empty for gas) as their rules require.
type base struct {
	serial     kernel.SerialNumber
	kind       Kind
	height     float64
	depth      float64
	tareWeight float64
	maxPayload float64
	loadMass   float64
	guard      guard.ConstructorGuard
}

func newBase(
	serial kernel.SerialNumber,
	kind Kind,
	height, depth, maxPayload, tareWeight, loadMass float64,
) (base, error) {
	b := base{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setSerial(serial),
		b.setKind(kind),
		b.setHeight(height),
		b.setDepth(depth),
		b.setMaxPayload(maxPayload),
		b.setTareWeight(tareWeight),
	); err != nil {
		return base{}, err
	}

	if err := b.setLoadMass(loadMass); err != nil {
		return base{}, err
	}

	return b, nil
}

// SerialNumber returns the container's unique identity.
func (b *base) SerialNumber() kernel.SerialNumber {
	return b.serial
}

// Kind returns the variant tag.
func (b *base) Kind() Kind {
	return b.kind
}

// Height returns the container height in centimeters.
func (b *base) Height() float64 {
	return b.height
}

// Depth returns the container depth in centimeters.
func (b *base) Depth() float64 {
	return b.depth
}

// TareWeight returns the empty weight in kilograms.
func (b *base) TareWeight() float64 {
	return b.tareWeight
}

// MaxPayload returns the nominal payload limit in kilograms.
func (b *base) MaxPayload() float64 {
	return b.maxPayload
}

// LoadMass returns the currently loaded cargo mass in kilograms.
func (b *base) LoadMass() float64 {
	return b.loadMass
}

// TotalWeight returns tare weight plus load mass in kilograms.
func (b *base) TotalWeight() float64 {
	return b.tareWeight + b.loadMass
}

// Load applies the default loading policy: the mass replaces the current
// load and must not exceed the max payload.
func (b *base) Load(mass float64) error {
	if mass < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"loadMass", fmt.Errorf("%.2f is negative", mass))
	}
	if mass > b.maxPayload {
		return ErrOverfill
	}

	b.loadMass = mass
	return nil
}

// Empty applies the default emptying policy: the load mass becomes zero.
func (b *base) Empty() {
	b.loadMass = 0
}

// Info returns the shared summary line. Variants append their own fields.
func (b *base) Info() string {
	return fmt.Sprintf("Container %s: kind=%s, load=%.2f kg, total=%.2f kg, maxPayload=%.2f kg",
		b.serial, b.kind, b.loadMass, b.TotalWeight(), b.maxPayload)
}

// Validate reports whether the container was properly constructed.
func (b *base) Validate() error {
	if b == nil {
		return ErrContainerIsNotConstructed
	}
	return b.guard.Validate(ErrContainerIsNotConstructed)
}

func (b *base) setSerial(serial kernel.SerialNumber) error {
	if err := serial.Validate(); err != nil {
		return err
	}

	b.serial = serial
	return nil
}

func (b *base) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	b.kind = kind
	return nil
}

func (b *base) setHeight(height float64) error {
	if height <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"height", fmt.Errorf("%.2f is not greater than 0", height))
	}

	b.height = height
	return nil
}

func (b *base) setDepth(depth float64) error {
	if depth <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"depth", fmt.Errorf("%.2f is not greater than 0", depth))
	}

	b.depth = depth
	return nil
}

func (b *base) setMaxPayload(maxPayload float64) error {
	if maxPayload <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxPayload", fmt.Errorf("%.2f is not greater than 0", maxPayload))
	}

	b.maxPayload = maxPayload
	return nil
}

func (b *base) setTareWeight(tareWeight float64) error {
	if tareWeight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"tareWeight", fmt.Errorf("%.2f is not greater than 0", tareWeight))
	}

	b.tareWeight = tareWeight
	return nil
}

// setLoadMass is used during restoration; new containers start empty.
func (b *base) setLoadMass(loadMass float64) error {
	if loadMass < 0 || loadMass > b.maxPayload {
		return errs.NewValueIsOutOfRangeError("loadMass", loadMass, 0, b.maxPayload)
	}

	b.loadMass = loadMass
	return nil
}
