package commands

import (
	"errors"

	"dronedelivery/internal/pkg/guard"
)

var (
	ErrReleaseOrphanedDronesCommandIsNotConstructed = errors.New(
		"ReleaseOrphanedDronesCommand must be created via NewReleaseOrphanedDronesCommand constructor",
	)
)

// ReleaseOrphanedDronesCommand frees Busy drones that no Delivering order references.
// This is a parameterless command run periodically by the reconciler job.
type ReleaseOrphanedDronesCommand struct {
	guard guard.ConstructorGuard
}

// NewReleaseOrphanedDronesCommand creates the command.
func NewReleaseOrphanedDronesCommand() ReleaseOrphanedDronesCommand {
	return ReleaseOrphanedDronesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ReleaseOrphanedDronesCommand) Validate() error {
	return c.guard.Validate(ErrReleaseOrphanedDronesCommandIsNotConstructed)
}
