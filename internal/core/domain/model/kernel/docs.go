// Package kernel provides the value objects shared by the order and drone aggregates.
//
// The package includes:
//   - UUID: identifiers for orders, drones and restaurants, plus ParseReference for
//     identifiers supplied by clients
//   - Location: a geographic point; Depot is where new orders and drones start
//   - Money: non-negative exact amounts for prices and totals
//
// All value objects are immutable and safe for concurrent use.
package kernel
