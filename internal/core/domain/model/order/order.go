package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
)

// SimulationStep is the distance a delivering drone covers per simulated tick,
// added to both latitude and longitude.
const SimulationStep = 0.0005

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a food order placed by a customer at a restaurant. It is the aggregate
// root that manages the order lifecycle from placement through drone delivery to completion.
//
// Order follows these invariants:
//   - Must have a valid identifier, customer, restaurant and delivery address
//   - Must contain at least one item; the total price never changes after creation
//   - A drone is referenced while Delivering and kept after a drone-delivered completion
//   - Status transitions follow the rules of Status
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	id           kernel.UUID
	customerID   string
	restaurantID kernel.UUID

	items           []Item
	totalPrice      kernel.Money
	deliveryAddress string

	status Status

	// droneID is nil until a drone is assigned
	droneID   *kernel.UUID
	droneName string

	// deliveryLocation is the target, droneLocation the last simulated drone position
	deliveryLocation kernel.Location
	droneLocation    kernel.Location

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a Pending order whose delivery target and drone position are both the depot.
//
// Example:
//
//	price, _ := kernel.MoneyFromFloat(12.99)
//	item, _ := order.NewItem("m1", "Pho", price, 1)
//	o, err := order.NewOrder(kernel.NewUUID(), "u1", restaurantID,
//	    []order.Item{item}, price, "1 Le Loi, District 1", time.Now().UTC())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	customerID string,
	restaurantID kernel.UUID,
	items []Item,
	totalPrice kernel.Money,
	deliveryAddress string,
	at time.Time,
) (*Order, error) {
	order := &Order{
		status:           Pending,
		totalPrice:       totalPrice,
		deliveryLocation: kernel.Depot(),
		droneLocation:    kernel.Depot(),
		createdAt:        at,
		updatedAt:        at,
		isConstructed:    true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setItems(items),
		order.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Snapshot carries the persisted state of an order for RestoreOrder.
type Snapshot struct {
	ID               kernel.UUID
	CustomerID       string
	RestaurantID     kernel.UUID
	Items            []Item
	TotalPrice       kernel.Money
	DeliveryAddress  string
	Status           Status
	DroneID          *kernel.UUID
	DroneName        string
	DeliveryLocation kernel.Location
	DroneLocation    kernel.Location
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RestoreOrder rebuilds an order from storage, validating the same invariants as NewOrder
// plus the consistency between status and drone reference.
func RestoreOrder(s Snapshot) (*Order, error) {
	order := &Order{
		totalPrice: s.TotalPrice,
		droneName:  s.DroneName,
		createdAt:  s.CreatedAt,
		updatedAt:  s.UpdatedAt,

		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(s.ID),
		order.setCustomerID(s.CustomerID),
		order.setRestaurantID(s.RestaurantID),
		order.setItems(s.Items),
		order.setDeliveryAddress(s.DeliveryAddress),
		order.setLocations(s.DeliveryLocation, s.DroneLocation),
		order.setStatusAndDrone(s.Status, s.DroneID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the external id of the customer who placed the order.
func (o *Order) CustomerID() string {
	return o.customerID
}

// RestaurantID returns the restaurant the order was placed at.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// TotalPrice returns the price fixed at creation.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// DeliveryAddress returns the free-form delivery address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Drone returns the assigned drone's ID.
// Returns nil if no drone was ever assigned.
func (o *Order) Drone() *kernel.UUID {
	return o.droneID
}

// DroneName returns the cached display name of the assigned drone.
func (o *Order) DroneName() string {
	return o.droneName
}

// DeliveryLocation returns the delivery target.
func (o *Order) DeliveryLocation() kernel.Location {
	return o.deliveryLocation
}

// DroneLocation returns the last simulated position of the delivering drone.
func (o *Order) DroneLocation() kernel.Location {
	return o.droneLocation
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order last changed.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Advance sets the status chosen by the restaurant. See Status.Advance for the allowed edges.
// Advancing to Completed keeps the drone reference, if any.
func (o *Order) Advance(target Status, at time.Time) error {
	newStatus, err := o.status.Advance(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = at
	return nil
}

// Accept moves a Pending order to Preparing.
func (o *Order) Accept(at time.Time) error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = at
	return nil
}

// Pay records a successful payment and reports whether the status changed.
func (o *Order) Pay(at time.Time) (bool, error) {
	newStatus, err := o.status.Pay()
	if err != nil {
		return false, err
	}
	if newStatus == o.status {
		return false, nil
	}

	o.status = newStatus
	o.updatedAt = at
	return true, nil
}

// AssignDrone binds a drone to the order and starts the delivery.
//
// This method enforces the following business rules:
//   - The drone ID must be valid and the name non-empty
//   - The order must be ReadyForPickup
//
// Example:
//
//	if err := o.AssignDrone(d.ID(), d.Name(), time.Now().UTC()); err != nil {
//	    // order is not ready for pickup
//	}
func (o *Order) AssignDrone(droneID kernel.UUID, droneName string, at time.Time) error {
	if err := droneID.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(droneName) == "" {
		return errs.NewValueIsRequiredError("drone_name")
	}

	newStatus, err := o.status.StartDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.droneID = &droneID
	o.droneName = droneName
	o.updatedAt = at
	return nil
}

// MoveDrone advances the simulated drone position by one SimulationStep.
// Only a Delivering order has a moving drone.
func (o *Order) MoveDrone(at time.Time) error {
	if o.status != Delivering {
		return errs.NewIllegalTransitionError("order", o.status, "has no drone in flight")
	}

	next, err := o.droneLocation.Offset(SimulationStep, SimulationStep)
	if err != nil {
		return err
	}

	o.droneLocation = next
	o.updatedAt = at
	return nil
}

// Complete marks the order as delivered and reports whether anything changed.
// Completing an already completed order is a no-op, so callers can retry safely.
func (o *Order) Complete(at time.Time) (bool, error) {
	if o.status.IsTerminal() {
		return false, nil
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return false, err
	}

	o.status = newStatus
	o.updatedAt = at
	return true, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if strings.TrimSpace(customerID) == "" {
		return errs.NewValueIsRequiredError("customer_id")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("restaurant_id", err)
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err)
		}
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("delivery_address")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setLocations(delivery, drone kernel.Location) error {
	if err := errors.Join(delivery.Validate(), drone.Validate()); err != nil {
		return err
	}
	o.deliveryLocation = delivery
	o.droneLocation = drone
	return nil
}

func (o *Order) setStatusAndDrone(status Status, droneID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if droneID != nil {
		if err := droneID.Validate(); err != nil {
			return err
		}
	}
	if err := status.ValidateCanHaveDrone(droneID != nil); err != nil {
		return err
	}
	o.status = status
	o.droneID = droneID
	return nil
}
