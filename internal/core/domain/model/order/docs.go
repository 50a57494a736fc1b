// Package order provides the Order aggregate root and its lifecycle state machine.
//
// The package includes:
//   - Order: identity, customer and restaurant references, items, price, drone binding
//     and simulated position
//   - Item: one immutable order line
//   - Status: the state machine PENDING, PREPARING, READY_FOR_PICKUP, DELIVERING, COMPLETED
//
// Key business rules:
//   - Orders start Pending at the depot with at least one item
//   - Kitchen stages may be set in any order; Delivering starts only by assigning a drone
//   - Any non-terminal order can be completed; Completed is final
//   - The total price never changes after creation
package order
