package commands

import (
	"context"
	"time"

	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/ports"
	"dronedelivery/internal/pkg/errs"
)

const (
	// PaymentStatusPaid is the only outcome of a mock payment.
	PaymentStatusPaid = "PAID"

	mockPaymentMessage        = "Payment processed successfully (mock)"
	mockTransactionPrefix     = "MOCK-"
	mockTransactionIDLength   = 8
	paymentIdempotencyKeyRoot = "payments:mock:"
)

// PaymentResult describes a processed mock payment.
type PaymentResult struct {
	OrderID       string
	Status        string
	Message       string
	TransactionID string
	Order         *order.Order
}

// MockPaymentCommandHandler marks an order as paid.
//
// A Pending or ReadyForPickup order moves to Preparing. Delivering and Completed are kept
// so a late payment never regresses a delivery. If the order is already Delivering with a
// drone, its simulation is (re)started; the simulator ignores orders already in flight.
//
// An idempotency key is claimed before the order changes and released again when the
// payment fails afterwards, so the client may retry with the same key.
type MockPaymentCommandHandler struct {
	uowFactory  UoWFactory
	idempotency ports.IdempotencyGuard
	effects     SideEffects
}

// NewMockPaymentCommandHandler creates the handler. idempotency may be nil to disable key checks.
func NewMockPaymentCommandHandler(
	uowFactory UoWFactory,
	idempotency ports.IdempotencyGuard,
	effects SideEffects,
) MockPaymentCommandHandler {
	return MockPaymentCommandHandler{
		uowFactory:  uowFactory,
		idempotency: idempotency,
		effects:     effects,
	}
}

// Handle processes the payment.
func (h MockPaymentCommandHandler) Handle(ctx context.Context, cmd MockPaymentCommand) (PaymentResult, error) {
	if err := cmd.Validate(); err != nil {
		return PaymentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PaymentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return PaymentResult{}, err
	}

	key := cmd.IdempotencyKey()
	claimed, err := h.claim(ctx, key)
	if err != nil {
		return PaymentResult{}, err
	}

	changed, err := h.pay(ctx, uow, o)
	if err != nil {
		if claimed {
			h.release(ctx, key)
		}
		return PaymentResult{}, err
	}

	if o.Status() == order.Delivering && o.Drone() != nil {
		h.effects.startDelivery(o.ID())
	}
	if changed {
		h.effects.orderChanged(ctx, o)
	}

	return PaymentResult{
		OrderID:       o.ID().String(),
		Status:        PaymentStatusPaid,
		Message:       mockPaymentMessage,
		TransactionID: mockTransactionPrefix + o.ID().String()[:mockTransactionIDLength],
		Order:         o,
	}, nil
}

func (h MockPaymentCommandHandler) pay(ctx context.Context, uow UoW, o *order.Order) (bool, error) {
	changed, err := o.Pay(time.Now().UTC())
	if err != nil {
		return false, err
	}

	if changed {
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return false, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}
	return changed, nil
}

// claim reports true when key was recorded by this call.
func (h MockPaymentCommandHandler) claim(ctx context.Context, key string) (bool, error) {
	if key == "" || h.idempotency == nil {
		return false, nil
	}

	claimed, err := h.idempotency.Claim(ctx, paymentIdempotencyKeyRoot+key)
	if err != nil {
		return false, err
	}
	if !claimed {
		return false, errs.NewResourceUnavailableError("payment", key, "was already processed")
	}
	return true, nil
}

func (h MockPaymentCommandHandler) release(ctx context.Context, key string) {
	if err := h.idempotency.Release(context.WithoutCancel(ctx), paymentIdempotencyKeyRoot+key); err != nil {
		h.effects.logger().WarnContext(ctx, "failed to release payment idempotency key",
			"key", key, "error", err)
	}
}
