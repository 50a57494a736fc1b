package drone

import (
	"fmt"
	"strings"

	"dronedelivery/internal/pkg/errs"
)

// Status is the availability of a drone.
//
//	Available ──assign──> Busy ──release──> Available
//	Available <──admin──> Offline
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota
	// Available drones can be assigned to an order of their restaurant.
	Available
	// Busy drones carry exactly one delivering order.
	Busy
	// Offline drones are taken out of service by an admin.
	Offline
)

// legacyIdle is an old stored spelling of Available.
const legacyIdle = "IDLE"

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Available: "AVAILABLE",
		Busy:      "BUSY",
		Offline:   "OFFLINE",
	}
}

// ParseStatus converts a wire or storage value into a Status, case-insensitively.
// The legacy value IDLE is read as Available.
func ParseStatus(value string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	if normalized == legacyIdle {
		return Available, nil
	}
	for status, str := range getStatusStrings() {
		if status != Unknown && str == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid drone status", value))
}

// LegacyAvailableValues lists every stored spelling that reads back as Available.
func LegacyAvailableValues() []string {
	return []string{Available.String(), legacyIdle}
}

// Validate checks that s is a defined status.
func (s Status) Validate() error {
	if s <= Unknown || s > Offline {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
