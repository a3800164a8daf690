package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/KelwinHenrique/garfai-be/internal/domain/entities"
	"github.com/KelwinHenrique/garfai-be/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound          = errors.New("client not found")
	ErrClientAddressNotFound   = errors.New("client address not found")
	ErrClientAddressOwnership  = errors.New("client address does not belong to client")
	ErrEnvironmentNotFound     = errors.New("environment not found")
	ErrOrderNotFound           = errors.New("order not found")
	ErrOrderOwnership          = errors.New("order does not belong to client")
	ErrOrderNotModifiable      = errors.New("order is in a terminal status")
	ErrItemNotFound            = errors.New("item not found")
	ErrChoiceNotFound          = errors.New("choice not found")
	ErrGarnishItemNotFound     = errors.New("garnish item not found")
	ErrInvalidQuantity         = errors.New("quantity must be a positive integer")
	ErrInvalidOrderStatus      = errors.New("invalid order status")
	ErrIllegalStatusTransition = errors.New("illegal order status transition")
	ErrChoiceCardinality       = errors.New("selected option count violates choice min/max")
)

type CreateOrderInput struct {
	WhatsappFlowsID string
	EnvironmentID   string
	ClientAddressID string
}

// ChoiceSelection is one {choiceId, optionId} pair from the add-item request.
// Pairs sharing a choiceId select multiple options of the same choice group.
type ChoiceSelection struct {
	ChoiceID string
	OptionID string
}

type AddOrderItemInput struct {
	ItemID   string
	Quantity int
	Notes    *string
	Choices  []ChoiceSelection
}

type AddOrderItemResult struct {
	OrderItem entities.OrderItem `json:"orderItem"`
	Message   string             `json:"message"`
}

type OrderStatusResult struct {
	Order   entities.Order `json:"order"`
	Message string         `json:"message"`
}

// OrderDetails is the merchant-facing aggregate: the full order tree plus the
// buyer identity.
type OrderDetails struct {
	Order  entities.Order  `json:"order"`
	Client entities.Client `json:"client"`
}

// IOrderUseCase exposes the order-composition and lifecycle operations.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, clientID string, input CreateOrderInput) (entities.Order, error)
	AddOrderItem(ctx context.Context, orderID, clientID string, input AddOrderItemInput) (AddOrderItemResult, error)
	UpdateOrderStatus(ctx context.Context, orderID, clientID string, status entities.OrderStatus, cancellationReason string) (OrderStatusResult, error)
	GetOrderByID(ctx context.Context, orderID, clientID string) (entities.Order, error)
	GetOrderByFlowAndClient(ctx context.Context, flowID, clientID string) (entities.Order, error)
	GetOrderDetails(ctx context.Context, orderID string) (OrderDetails, error)
	ListOrdersByClient(ctx context.Context, clientID string) ([]entities.Order, error)
	ListOrdersByStatus(ctx context.Context, environmentID string, status entities.OrderStatus) ([]entities.Order, error)
}

type OrderUseCase struct {
	orders       interfaces.IOrderRepository
	uow          interfaces.IOrderUnitOfWork
	catalog      interfaces.ICatalogRepository
	clients      interfaces.IClientRepository
	environments interfaces.IEnvironmentRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	orders interfaces.IOrderRepository,
	uow interfaces.IOrderUnitOfWork,
	catalog interfaces.ICatalogRepository,
	clients interfaces.IClientRepository,
	environments interfaces.IEnvironmentRepository,
) *OrderUseCase {
	return &OrderUseCase{
		orders:       orders,
		uow:          uow,
		catalog:      catalog,
		clients:      clients,
		environments: environments,
	}
}

// CreateOrder opens a new checkout session in CART with zeroed amounts.
func (u *OrderUseCase) CreateOrder(ctx context.Context, clientID string, input CreateOrderInput) (entities.Order, error) {
	if _, err := u.requireClient(ctx, clientID); err != nil {
		return entities.Order{}, err
	}

	address, err := u.clients.GetAddressByID(ctx, input.ClientAddressID)
	if err != nil {
		return entities.Order{}, err
	}
	if address.ID == "" {
		return entities.Order{}, ErrClientAddressNotFound
	}
	if address.ClientID != clientID {
		return entities.Order{}, ErrClientAddressOwnership
	}

	env, err := u.environments.GetByID(ctx, input.EnvironmentID)
	if err != nil {
		return entities.Order{}, err
	}
	if env.ID == "" {
		return entities.Order{}, ErrEnvironmentNotFound
	}

	order := entities.Order{
		ID:              uuid.NewString(),
		EnvironmentID:   &input.EnvironmentID,
		ClientID:        clientID,
		WhatsappFlowsID: input.WhatsappFlowsID,
		Status:          entities.OrderStatusCart,
		ClientAddressID: &input.ClientAddressID,
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] created order_id=%s client_id=%s", created.ID, clientID)
	return created, nil
}

// AddOrderItem is the line-item composer. It validates the selection against
// the catalog, snapshots catalog fields onto new order lines, and updates the
// order's running amounts, all inside one transaction.
//
// Garnish prices only flow into the item/garnish line totals, never into the
// order subtotal. That matches the observed production behavior and is pinned
// by tests; see DESIGN.md before changing it.
func (u *OrderUseCase) AddOrderItem(ctx context.Context, orderID, clientID string, input AddOrderItemInput) (AddOrderItemResult, error) {
	log.Printf("[order][usecase] add-item start order_id=%s item_id=%s qty=%d", orderID, input.ItemID, input.Quantity)

	if input.Quantity <= 0 {
		return AddOrderItemResult{}, ErrInvalidQuantity
	}
	if _, err := u.requireClient(ctx, clientID); err != nil {
		return AddOrderItemResult{}, err
	}
	order, err := u.requireOwnedOrder(ctx, orderID, clientID)
	if err != nil {
		return AddOrderItemResult{}, err
	}
	if order.Status.IsTerminal() {
		return AddOrderItemResult{}, ErrOrderNotModifiable
	}

	item, err := u.catalog.GetItemByID(ctx, input.ItemID)
	if err != nil {
		return AddOrderItemResult{}, err
	}
	if item.ID == "" {
		return AddOrderItemResult{}, ErrItemNotFound
	}

	// The new line lands at the end of the order.
	existingItems, err := u.orders.GetItemsByOrderID(ctx, order.ID)
	if err != nil {
		return AddOrderItemResult{}, err
	}

	groups := groupChoiceSelections(input.Choices)

	var createdItem entities.OrderItem
	err = u.uow.Do(ctx, func(tx interfaces.IOrderTx) error {
		createdItem, err = tx.CreateOrderItem(ctx, materializeOrderItem(order, item, input.Quantity, input.Notes, len(existingItems)))
		if err != nil {
			return err
		}

		// Subtotal and total move together by the base line price. Applied as
		// an atomic SQL increment so two concurrent additions to the same
		// order cannot lose an update.
		if err := tx.AddOrderAmounts(ctx, order.ID, input.Quantity*item.UnitPrice); err != nil {
			return err
		}

		for groupIdx, group := range groups {
			choice, err := tx.GetChoiceByID(ctx, group.choiceID)
			if err != nil {
				return err
			}
			if choice.ID == "" {
				return ErrChoiceNotFound
			}
			if len(group.optionIDs) < choice.Min || len(group.optionIDs) > choice.Max {
				return ErrChoiceCardinality
			}

			createdChoice, err := tx.CreateOrderChoice(ctx, materializeOrderChoice(order, createdItem.ID, choice, groupIdx))
			if err != nil {
				return err
			}

			for optIdx, optionID := range group.optionIDs {
				garnish, err := tx.GetGarnishItemByID(ctx, optionID)
				if err != nil {
					return err
				}
				if garnish.ID == "" {
					return ErrGarnishItemNotFound
				}
				if _, err := tx.CreateOrderGarnishItem(ctx, materializeOrderGarnishItem(order, createdChoice.ID, garnish, 1, optIdx)); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[order][usecase] add-item failed order_id=%s err=%v", orderID, err)
		return AddOrderItemResult{}, err
	}

	log.Printf("[order][usecase] add-item success order_id=%s order_item_id=%s", orderID, createdItem.ID)
	return AddOrderItemResult{OrderItem: createdItem, Message: "Item added to order successfully"}, nil
}

// UpdateOrderStatus drives the order lifecycle state machine: it validates
// the target against the legal-transition table, stamps the per-status
// timestamp, and records the cancellation reason for cancel/reject targets.
func (u *OrderUseCase) UpdateOrderStatus(ctx context.Context, orderID, clientID string, status entities.OrderStatus, cancellationReason string) (OrderStatusResult, error) {
	if !status.Valid() || status == entities.OrderStatusCart {
		return OrderStatusResult{}, ErrInvalidOrderStatus
	}
	if _, err := u.requireClient(ctx, clientID); err != nil {
		return OrderStatusResult{}, err
	}
	order, err := u.requireOwnedOrder(ctx, orderID, clientID)
	if err != nil {
		return OrderStatusResult{}, err
	}
	if !order.Status.CanTransitionTo(status) {
		log.Printf("[order][usecase] illegal transition order_id=%s from=%s to=%s", orderID, order.Status, status)
		return OrderStatusResult{}, ErrIllegalStatusTransition
	}

	update := entities.OrderStatusUpdate{
		Status:    status,
		StampedAt: time.Now().UTC(),
	}
	if status.IsCancellation() && cancellationReason != "" {
		update.CancellationReason = &cancellationReason
	}

	updated, err := u.orders.UpdateStatus(ctx, orderID, update)
	if err != nil {
		return OrderStatusResult{}, err
	}
	log.Printf("[order][usecase] status updated order_id=%s from=%s to=%s", orderID, order.Status, status)
	return OrderStatusResult{Order: updated, Message: "Order status updated successfully"}, nil
}

func (u *OrderUseCase) GetOrderByID(ctx context.Context, orderID, clientID string) (entities.Order, error) {
	return u.requireOwnedOrder(ctx, orderID, clientID)
}

// GetOrderByFlowAndClient resolves the order for a conversational checkout
// turn and attaches its items.
func (u *OrderUseCase) GetOrderByFlowAndClient(ctx context.Context, flowID, clientID string) (entities.Order, error) {
	order, err := u.orders.GetByFlowAndClient(ctx, flowID, clientID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	items, err := u.orders.GetItemsByOrderID(ctx, order.ID)
	if err != nil {
		return entities.Order{}, err
	}
	order.Items = items
	return order, nil
}

// GetOrderDetails assembles the merchant view: order, buyer identity, and the
// full items -> choices -> garnish tree.
func (u *OrderUseCase) GetOrderDetails(ctx context.Context, orderID string) (OrderDetails, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return OrderDetails{}, err
	}
	if order.ID == "" {
		return OrderDetails{}, ErrOrderNotFound
	}

	client, err := u.clients.GetByID(ctx, order.ClientID)
	if err != nil {
		return OrderDetails{}, err
	}

	items, err := u.orders.GetItemsByOrderID(ctx, order.ID)
	if err != nil {
		return OrderDetails{}, err
	}
	for i := range items {
		choices, err := u.orders.GetChoicesByOrderItemID(ctx, items[i].ID)
		if err != nil {
			return OrderDetails{}, err
		}
		for j := range choices {
			garnish, err := u.orders.GetGarnishByOrderChoiceID(ctx, choices[j].ID)
			if err != nil {
				return OrderDetails{}, err
			}
			choices[j].GarnishItems = garnish
		}
		items[i].Choices = choices
	}
	order.Items = items

	return OrderDetails{Order: order, Client: client}, nil
}

func (u *OrderUseCase) ListOrdersByClient(ctx context.Context, clientID string) ([]entities.Order, error) {
	if _, err := u.requireClient(ctx, clientID); err != nil {
		return nil, err
	}
	return u.orders.ListByClientID(ctx, clientID)
}

func (u *OrderUseCase) ListOrdersByStatus(ctx context.Context, environmentID string, status entities.OrderStatus) ([]entities.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidOrderStatus
	}
	return u.orders.ListByStatus(ctx, environmentID, status)
}

func (u *OrderUseCase) requireClient(ctx context.Context, clientID string) (entities.Client, error) {
	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return entities.Client{}, err
	}
	if client.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return client, nil
}

func (u *OrderUseCase) requireOwnedOrder(ctx context.Context, orderID, clientID string) (entities.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if order.ClientID != clientID {
		return entities.Order{}, ErrOrderOwnership
	}
	return order, nil
}

type choiceGroup struct {
	choiceID  string
	optionIDs []string
}

// groupChoiceSelections groups {choiceId, optionId} pairs by choiceId,
// preserving first-seen order of the groups and of the options inside each.
func groupChoiceSelections(selections []ChoiceSelection) []choiceGroup {
	var groups []choiceGroup
	index := make(map[string]int)
	for _, sel := range selections {
		i, ok := index[sel.ChoiceID]
		if !ok {
			i = len(groups)
			index[sel.ChoiceID] = i
			groups = append(groups, choiceGroup{choiceID: sel.ChoiceID})
		}
		groups[i].optionIDs = append(groups[i].optionIDs, sel.OptionID)
	}
	return groups
}
