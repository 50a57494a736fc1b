package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var (
	ErrSetDroneStatusCommandIsNotConstructed = errors.New(
		"SetDroneStatusCommand must be created via NewSetDroneStatusCommand constructor",
	)
)

// SetDroneStatusCommand is an admin taking a drone out of service or back in.
type SetDroneStatusCommand struct {
	droneID kernel.UUID
	status  drone.Status

	guard guard.ConstructorGuard
}

// NewSetDroneStatusCommand parses status case-insensitively; IDLE is read as AVAILABLE.
func NewSetDroneStatusCommand(droneID kernel.UUID, status string) (SetDroneStatusCommand, error) {
	parsed, parseErr := drone.ParseStatus(status)
	if err := errors.Join(droneID.Validate(), parseErr); err != nil {
		return SetDroneStatusCommand{}, err
	}

	return SetDroneStatusCommand{
		droneID: droneID,
		status:  parsed,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDroneStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetDroneStatusCommandIsNotConstructed)
}

// DroneID returns the drone to change.
func (c SetDroneStatusCommand) DroneID() kernel.UUID {
	return c.droneID
}

// Status returns the requested availability.
func (c SetDroneStatusCommand) Status() drone.Status {
	return c.status
}
