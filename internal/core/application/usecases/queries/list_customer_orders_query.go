package queries

import (
	"errors"
	"strings"

	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

var (
	ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
		"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
	)
)

// ListCustomerOrdersQuery retrieves every order a customer placed, newest first.
type ListCustomerOrdersQuery struct {
	customerID string

	guard guard.ConstructorGuard
}

// NewListCustomerOrdersQuery creates a query for customerID.
func NewListCustomerOrdersQuery(customerID string) (ListCustomerOrdersQuery, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return ListCustomerOrdersQuery{}, errs.NewValueIsRequiredError("customer_id")
	}
	return ListCustomerOrdersQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are listed.
func (q ListCustomerOrdersQuery) CustomerID() string {
	return q.customerID
}
