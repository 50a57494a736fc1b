package order

import (
	"errors"
	"fmt"
	"strings"

	"dronedelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so that an order
// and the drone delivering it never disagree.
//
// State transitions:
//
//	Pending ──> Preparing ──> ReadyForPickup ──> Delivering ──> Completed
//	   │  ▲        │  ▲           │                               ▲
//	   └──┴────────┴──┴───────────┘                               │
//	   (kitchen stages may be set in any order)                   │
//	   any non-terminal status ───────────────────────────────────┘
//
// Delivering is entered only by assigning a drone.
// Completed is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a placed order awaiting payment or acceptance.
	Pending

	// Preparing means the restaurant is cooking the order.
	Preparing

	// ReadyForPickup means the food is packed and waits for a drone.
	ReadyForPickup

	// Delivering means a drone carries the order. The order references the drone.
	Delivering

	// Completed is the final state. No further transitions are allowed.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		Preparing:      "PREPARING",
		ReadyForPickup: "READY_FOR_PICKUP",
		Delivering:     "DELIVERING",
		Completed:      "COMPLETED",
	}
}

// ParseStatus converts a wire or storage value into a Status.
// Matching is case-insensitive and ignores surrounding spaces.
//
// Example:
//
//	s, err := order.ParseStatus("ready_for_pickup") // order.ReadyForPickup
func ParseStatus(value string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid order status", value))
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s <= Unknown || s > Completed {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, e.g. "READY_FOR_PICKUP".
// It is safe to call on invalid values and returns "UNKNOWN" for them.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition is possible from s.
func (s Status) IsTerminal() bool {
	return s == Completed
}

// IsKitchenStage reports whether s is one of the stages before a drone is involved.
func (s Status) IsKitchenStage() bool {
	return s == Pending || s == Preparing || s == ReadyForPickup
}

// ValidateCanHaveDrone checks the consistency between an order status and drone assignment.
//
// Business rules:
//   - Delivering orders must reference a drone
//   - kitchen stages must not reference a drone
//   - Completed orders may or may not reference one, depending on how they were completed
func (s Status) ValidateCanHaveDrone(hasDrone bool) error {
	if hasDrone && s.IsKitchenStage() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a drone", s),
		)
	}
	if !hasDrone && s == Delivering {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no drone", s),
		)
	}
	return nil
}

// Advance returns the status an order moves to when a restaurant sets target.
//
// Rejected with an IllegalTransitionError:
//   - any transition out of Completed
//   - target Delivering (only drone assignment starts a delivery)
//   - Delivering back to a kitchen stage
//
// Kitchen stages may be set in any order. Target Completed is allowed from any
// non-terminal status.
func (s Status) Advance(target Status) (Status, error) {
	if err := errors.Join(s.Validate(), target.Validate()); err != nil {
		return Unknown, err
	}
	switch {
	case s.IsTerminal():
		return Unknown, errs.NewIllegalTransitionError("order", s, "cannot leave a completed order")
	case target == Delivering:
		return Unknown, errs.NewIllegalTransitionError("order", s, "enters DELIVERING only by assigning a drone")
	case s == Delivering && target.IsKitchenStage():
		return Unknown, errs.NewIllegalTransitionError("order", s, "cannot return to "+target.String())
	}
	return target, nil
}

// Accept moves a Pending order to Preparing.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewIllegalTransitionError("order", s, "can be accepted only while PENDING")
	}
	return Preparing, nil
}

// Pay returns the status after a successful payment.
// A kitchen stage becomes Preparing. Delivering and Completed are kept so a payment
// never regresses a delivery.
func (s Status) Pay() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s == Delivering || s == Completed {
		return s, nil
	}
	return Preparing, nil
}

// StartDelivery moves a ReadyForPickup order to Delivering.
func (s Status) StartDelivery() (Status, error) {
	if s != ReadyForPickup {
		return Unknown, errs.NewIllegalTransitionError("order", s, "must be READY_FOR_PICKUP to assign a drone")
	}
	return Delivering, nil
}

// Complete moves any non-terminal status to Completed.
func (s Status) Complete() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewIllegalTransitionError("order", s, "is already completed")
	}
	return Completed, nil
}
