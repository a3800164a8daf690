package entities

import "testing"

func TestOrderStatusValid(t *testing.T) {
	if !OrderStatusCart.Valid() || !OrderStatusCompleted.Valid() {
		t.Fatalf("expected known statuses to be valid")
	}
	if OrderStatus("SHIPPED").Valid() {
		t.Fatalf("expected unknown status to be invalid")
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	terminal := []OrderStatus{
		OrderStatusCompleted, OrderStatusCanceledByMerchant, OrderStatusCanceledByUser,
		OrderStatusRejectedByMerchant, OrderStatusPaymentFailed, OrderStatusExpired,
	}
	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Fatalf("expected %s to be terminal", s)
		}
	}
	open := []OrderStatus{
		OrderStatusCart, OrderStatusPendingPayment, OrderStatusWaitingMerchantAcceptance,
		OrderStatusInPreparation, OrderStatusReadyForDelivery, OrderStatusInDelivery,
		OrderStatusDriverOnClient,
	}
	for _, s := range open {
		if s.IsTerminal() {
			t.Fatalf("expected %s to be open", s)
		}
	}
}

func TestOrderStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusCart, OrderStatusPendingPayment, true},
		{OrderStatusCart, OrderStatusWaitingMerchantAcceptance, true},
		{OrderStatusCart, OrderStatusCanceledByUser, true},
		{OrderStatusCart, OrderStatusExpired, true},
		{OrderStatusCart, OrderStatusCompleted, false},
		{OrderStatusPendingPayment, OrderStatusPaymentFailed, true},
		{OrderStatusPendingPayment, OrderStatusInPreparation, false},
		{OrderStatusWaitingMerchantAcceptance, OrderStatusInPreparation, true},
		{OrderStatusWaitingMerchantAcceptance, OrderStatusRejectedByMerchant, true},
		{OrderStatusInPreparation, OrderStatusReadyForDelivery, true},
		{OrderStatusInPreparation, OrderStatusCanceledByUser, false},
		{OrderStatusReadyForDelivery, OrderStatusInDelivery, true},
		{OrderStatusInDelivery, OrderStatusDriverOnClient, true},
		{OrderStatusInDelivery, OrderStatusCompleted, true},
		{OrderStatusDriverOnClient, OrderStatusCompleted, true},
		{OrderStatusCompleted, OrderStatusInDelivery, false},
		{OrderStatusCanceledByUser, OrderStatusCart, false},
		{OrderStatusCompleted, OrderStatusCart, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.allowed {
			t.Errorf("%s -> %s: expected %v, got %v", c.from, c.to, c.allowed, got)
		}
	}
}

func TestOrderStatusNoTransitionTargetsCart(t *testing.T) {
	all := []OrderStatus{
		OrderStatusCart, OrderStatusPendingPayment, OrderStatusWaitingMerchantAcceptance,
		OrderStatusInPreparation, OrderStatusReadyForDelivery, OrderStatusInDelivery,
		OrderStatusDriverOnClient, OrderStatusCompleted, OrderStatusCanceledByMerchant,
		OrderStatusCanceledByUser, OrderStatusRejectedByMerchant, OrderStatusPaymentFailed,
		OrderStatusExpired,
	}
	for _, s := range all {
		if s.CanTransitionTo(OrderStatusCart) {
			t.Errorf("%s must not transition back to CART", s)
		}
	}
}

func TestOrderStatusTerminalHasNoExits(t *testing.T) {
	all := []OrderStatus{
		OrderStatusCart, OrderStatusPendingPayment, OrderStatusWaitingMerchantAcceptance,
		OrderStatusInPreparation, OrderStatusReadyForDelivery, OrderStatusInDelivery,
		OrderStatusDriverOnClient, OrderStatusCompleted, OrderStatusCanceledByMerchant,
		OrderStatusCanceledByUser, OrderStatusRejectedByMerchant, OrderStatusPaymentFailed,
		OrderStatusExpired,
	}
	for _, from := range all {
		if !from.IsTerminal() {
			continue
		}
		for _, to := range all {
			if from.CanTransitionTo(to) {
				t.Errorf("terminal %s must not transition to %s", from, to)
			}
		}
	}
}

func TestOrderStatusTimestampColumn(t *testing.T) {
	if got := OrderStatusCart.TimestampColumn(); got != "" {
		t.Fatalf("expected no column for CART, got %q", got)
	}
	cases := map[OrderStatus]string{
		OrderStatusPendingPayment:            "sent_to_pending_payment_at",
		OrderStatusWaitingMerchantAcceptance: "sent_to_waiting_merchant_acceptance_at",
		OrderStatusInPreparation:             "sent_to_in_preparation_at",
		OrderStatusReadyForDelivery:          "sent_to_ready_for_delivery_at",
		OrderStatusInDelivery:                "sent_to_in_delivery_at",
		OrderStatusDriverOnClient:            "sent_to_driver_on_client_at",
		OrderStatusCompleted:                 "sent_to_completed_at",
		OrderStatusCanceledByMerchant:        "sent_to_canceled_by_merchant_at",
		OrderStatusCanceledByUser:            "sent_to_canceled_by_user_at",
		OrderStatusRejectedByMerchant:        "sent_to_rejected_by_merchant_at",
		OrderStatusPaymentFailed:             "sent_to_payment_failed_at",
		OrderStatusExpired:                   "sent_to_expired_at",
	}
	for s, want := range cases {
		if got := s.TimestampColumn(); got != want {
			t.Errorf("%s: expected %q, got %q", s, want, got)
		}
	}
}

func TestOrderStatusIsCancellation(t *testing.T) {
	if !OrderStatusCanceledByUser.IsCancellation() || !OrderStatusCanceledByMerchant.IsCancellation() || !OrderStatusRejectedByMerchant.IsCancellation() {
		t.Fatalf("expected cancel/reject statuses to carry a reason")
	}
	if OrderStatusExpired.IsCancellation() || OrderStatusPaymentFailed.IsCancellation() || OrderStatusCompleted.IsCancellation() {
		t.Fatalf("expected non-cancellation statuses to carry no reason")
	}
}
