// Package drone provides the Drone aggregate and its availability status.
//
// Drones belong to at most one restaurant, start Available at the depot and
// become Busy while delivering a single order. The stored value IDLE from older
// records is read as Available.
package drone
