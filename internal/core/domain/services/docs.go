// Package services provides domain services that coordinate business rules spanning
// more than one aggregate.
//
// The package includes:
//   - DroneAssigner: binds an available drone of the right restaurant to an order ready for pickup
package services
