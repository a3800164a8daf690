package entities

import "time"

// OrderStatus represents the order lifecycle.
//
// Domain notes:
//   - Every order starts in CART and only ever moves forward along the
//     transition table below.
//   - Each non-CART status owns a dedicated "sent to" timestamp column on the
//     orders table, stamped when the order enters that status.

type OrderStatus string

const (
	OrderStatusCart                      OrderStatus = "CART"
	OrderStatusPendingPayment            OrderStatus = "PENDING_PAYMENT"
	OrderStatusWaitingMerchantAcceptance OrderStatus = "WAITING_MERCHANT_ACCEPTANCE"
	OrderStatusInPreparation             OrderStatus = "IN_PREPARATION"
	OrderStatusReadyForDelivery          OrderStatus = "READY_FOR_DELIVERY"
	OrderStatusInDelivery                OrderStatus = "IN_DELIVERY"
	OrderStatusDriverOnClient            OrderStatus = "DRIVER_ON_CLIENT"
	OrderStatusCompleted                 OrderStatus = "COMPLETED"
	OrderStatusCanceledByMerchant        OrderStatus = "CANCELED_BY_MERCHANT"
	OrderStatusCanceledByUser            OrderStatus = "CANCELED_BY_USER"
	OrderStatusRejectedByMerchant        OrderStatus = "REJECTED_BY_MERCHANT"
	OrderStatusPaymentFailed             OrderStatus = "PAYMENT_FAILED"
	OrderStatusExpired                   OrderStatus = "EXPIRED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusCart, OrderStatusPendingPayment, OrderStatusWaitingMerchantAcceptance,
		OrderStatusInPreparation, OrderStatusReadyForDelivery, OrderStatusInDelivery,
		OrderStatusDriverOnClient, OrderStatusCompleted, OrderStatusCanceledByMerchant,
		OrderStatusCanceledByUser, OrderStatusRejectedByMerchant, OrderStatusPaymentFailed,
		OrderStatusExpired:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition may leave this status.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusCanceledByMerchant, OrderStatusCanceledByUser,
		OrderStatusRejectedByMerchant, OrderStatusPaymentFailed, OrderStatusExpired:
		return true
	}
	return false
}

// IsCancellation reports whether this status carries a cancellation reason.
func (s OrderStatus) IsCancellation() bool {
	switch s {
	case OrderStatusCanceledByMerchant, OrderStatusCanceledByUser, OrderStatusRejectedByMerchant:
		return true
	}
	return false
}

// TimestampColumn returns the orders column stamped when the order enters this
// status, or "" for CART (which has no dedicated column).
func (s OrderStatus) TimestampColumn() string {
	switch s {
	case OrderStatusPendingPayment:
		return "sent_to_pending_payment_at"
	case OrderStatusWaitingMerchantAcceptance:
		return "sent_to_waiting_merchant_acceptance_at"
	case OrderStatusInPreparation:
		return "sent_to_in_preparation_at"
	case OrderStatusReadyForDelivery:
		return "sent_to_ready_for_delivery_at"
	case OrderStatusInDelivery:
		return "sent_to_in_delivery_at"
	case OrderStatusDriverOnClient:
		return "sent_to_driver_on_client_at"
	case OrderStatusCompleted:
		return "sent_to_completed_at"
	case OrderStatusCanceledByMerchant:
		return "sent_to_canceled_by_merchant_at"
	case OrderStatusCanceledByUser:
		return "sent_to_canceled_by_user_at"
	case OrderStatusRejectedByMerchant:
		return "sent_to_rejected_by_merchant_at"
	case OrderStatusPaymentFailed:
		return "sent_to_payment_failed_at"
	case OrderStatusExpired:
		return "sent_to_expired_at"
	}
	return ""
}

// legalTransitionSources maps each target status to the set of statuses an
// order may come from. A target absent from the map is unreachable through
// UpdateOrderStatus (CART is only ever set at creation).
var legalTransitionSources = map[OrderStatus][]OrderStatus{
	OrderStatusPendingPayment:            {OrderStatusCart},
	OrderStatusWaitingMerchantAcceptance: {OrderStatusCart, OrderStatusPendingPayment},
	OrderStatusInPreparation:             {OrderStatusWaitingMerchantAcceptance},
	OrderStatusReadyForDelivery:          {OrderStatusInPreparation},
	OrderStatusInDelivery:                {OrderStatusReadyForDelivery},
	OrderStatusDriverOnClient:            {OrderStatusInDelivery},
	OrderStatusCompleted:                 {OrderStatusInDelivery, OrderStatusDriverOnClient},
	OrderStatusCanceledByMerchant:        {OrderStatusWaitingMerchantAcceptance, OrderStatusInPreparation, OrderStatusReadyForDelivery},
	OrderStatusCanceledByUser:            {OrderStatusCart, OrderStatusPendingPayment, OrderStatusWaitingMerchantAcceptance},
	OrderStatusRejectedByMerchant:        {OrderStatusWaitingMerchantAcceptance},
	OrderStatusPaymentFailed:             {OrderStatusPendingPayment},
	OrderStatusExpired:                   {OrderStatusCart, OrderStatusPendingPayment},
}

// CanTransitionTo reports whether an order currently in s may move to target.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, src := range legalTransitionSources[target] {
		if src == s {
			return true
		}
	}
	return false
}

// Order is the root aggregate for one checkout session.
//
// Monetary fields are integer minor units (cents); the engine maintains
// TotalAmount = SubtotalAmount + DeliveryFeeAmount - DiscountAmount after
// every line mutation. The record is never physically deleted.
type Order struct {
	ID            string  `gorm:"type:char(36);primaryKey" json:"id"`
	EnvironmentID *string `gorm:"type:char(36);index" json:"environmentId"`
	ClientID      string  `gorm:"type:char(36);not null;index" json:"clientId"`

	WhatsappFlowsID string `gorm:"type:char(36);not null;index" json:"whatsappFlowsId"`

	Status OrderStatus `gorm:"type:varchar(40);not null;default:CART" json:"status"`

	SubtotalAmount    int `gorm:"not null;default:0" json:"subtotalAmount"`
	DiscountAmount    int `gorm:"not null;default:0" json:"discountAmount"`
	DeliveryFeeAmount int `gorm:"not null;default:0" json:"deliveryFeeAmount"`
	TotalAmount       int `gorm:"not null;default:0" json:"totalAmount"`

	ClientAddressID *string `gorm:"type:char(36)" json:"clientAddressId"`

	SentToPendingPaymentAt            *time.Time `json:"sentToPendingPaymentAt"`
	SentToWaitingMerchantAcceptanceAt *time.Time `json:"sentToWaitingMerchantAcceptanceAt"`
	SentToInPreparationAt             *time.Time `json:"sentToInPreparationAt"`
	SentToReadyForDeliveryAt          *time.Time `json:"sentToReadyForDeliveryAt"`
	SentToInDeliveryAt                *time.Time `json:"sentToInDeliveryAt"`
	SentToDriverOnClientAt            *time.Time `json:"sentToDriverOnClientAt"`
	SentToCompletedAt                 *time.Time `json:"sentToCompletedAt"`
	SentToCanceledByMerchantAt        *time.Time `json:"sentToCanceledByMerchantAt"`
	SentToCanceledByUserAt            *time.Time `json:"sentToCanceledByUserAt"`
	SentToRejectedByMerchantAt        *time.Time `json:"sentToRejectedByMerchantAt"`
	SentToPaymentFailedAt             *time.Time `json:"sentToPaymentFailedAt"`
	SentToExpiredAt                   *time.Time `json:"sentToExpiredAt"`

	CancellationReason *string `gorm:"type:text" json:"cancellationReason"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderStatusUpdate is the single-row update applied by the lifecycle state
// machine: the new status, the moment it was entered, and the cancellation
// reason for cancel/reject targets.
type OrderStatusUpdate struct {
	Status             OrderStatus
	StampedAt          time.Time
	CancellationReason *string
}
