package request

import "github.com/KelwinHenrique/garfai-be/internal/usecase"

// CreateOrderRequest opens a checkout session. The buyer comes from the
// clientId header, never from the body.
type CreateOrderRequest struct {
	WhatsappFlowsID string `json:"whatsappFlowsId" binding:"required,uuid"`
	EnvironmentID   string `json:"environmentId" binding:"required,uuid"`
	ClientAddressID string `json:"clientAddressId" binding:"required,uuid"`
}

func (r CreateOrderRequest) ToInput() usecase.CreateOrderInput {
	return usecase.CreateOrderInput{
		WhatsappFlowsID: r.WhatsappFlowsID,
		EnvironmentID:   r.EnvironmentID,
		ClientAddressID: r.ClientAddressID,
	}
}

// ChoiceSelectionRequest is one {choiceId, optionId} pair; repeating a
// choiceId selects multiple options of the same choice group.
type ChoiceSelectionRequest struct {
	ChoiceID string `json:"choiceId" binding:"required,uuid"`
	OptionID string `json:"optionId" binding:"required,uuid"`
}

type AddOrderItemRequest struct {
	ItemID   string                   `json:"itemId" binding:"required,uuid"`
	Quantity int                      `json:"quantity" binding:"required,gt=0"`
	Notes    *string                  `json:"notes"`
	Choices  []ChoiceSelectionRequest `json:"choices" binding:"omitempty,dive"`
}

// ToInput maps the request onto the composer input, flattening the choice
// pairs in request order.
func (r AddOrderItemRequest) ToInput() usecase.AddOrderItemInput {
	input := usecase.AddOrderItemInput{
		ItemID:   r.ItemID,
		Quantity: r.Quantity,
		Notes:    r.Notes,
	}
	for _, sel := range r.Choices {
		input.Choices = append(input.Choices, usecase.ChoiceSelection{
			ChoiceID: sel.ChoiceID,
			OptionID: sel.OptionID,
		})
	}
	return input
}

type UpdateOrderStatusRequest struct {
	Status             string  `json:"status" binding:"required"`
	CancellationReason *string `json:"cancellationReason"`
}

// ResolveCancellationReason unwraps the optional reason to the empty string.
func (r UpdateOrderStatusRequest) ResolveCancellationReason() string {
	if r.CancellationReason == nil {
		return ""
	}
	return *r.CancellationReason
}
