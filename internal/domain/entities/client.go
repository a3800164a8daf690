package entities

import "time"

// Client is the buyer identity (e.g. a WhatsApp user). The order engine only
// needs existence and address-ownership checks against it.
type Client struct {
	ID            string  `gorm:"type:char(36);primaryKey" json:"id"`
	EnvironmentID *string `gorm:"type:char(36);index" json:"environmentId"`

	Name   string `gorm:"type:varchar(255)" json:"name"`
	Sender string `gorm:"type:varchar(20)" json:"sender"`

	Addresses []ClientAddress `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ClientAddress struct {
	ID       string `gorm:"type:char(36);primaryKey" json:"id"`
	ClientID string `gorm:"type:char(36);not null;index" json:"clientId"`

	Street       string  `gorm:"type:text" json:"street"`
	Number       string  `gorm:"type:varchar(20)" json:"number"`
	Complement   *string `gorm:"type:text" json:"complement"`
	Neighborhood string  `gorm:"type:varchar(100)" json:"neighborhood"`
	City         string  `gorm:"type:varchar(100)" json:"city"`
	State        string  `gorm:"type:varchar(2)" json:"state"`
	Zipcode      string  `gorm:"type:varchar(10)" json:"zipcode"`

	// Deleting an address nulls the reference on orders that shipped to it.
	Orders []Order `gorm:"foreignKey:ClientAddressID;constraint:OnDelete:SET NULL" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Environment is the seller tenant that owns menus and receives orders.
type Environment struct {
	ID   string `gorm:"type:char(36);primaryKey" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`

	// The environment id is denormalized onto every order line; removing the
	// environment nulls those columns instead of deleting history.
	Clients           []Client           `gorm:"foreignKey:EnvironmentID;constraint:OnDelete:SET NULL" json:"-"`
	Orders            []Order            `gorm:"foreignKey:EnvironmentID;constraint:OnDelete:SET NULL" json:"-"`
	OrderItems        []OrderItem        `gorm:"foreignKey:EnvironmentID;constraint:OnDelete:SET NULL" json:"-"`
	OrderChoices      []OrderChoice      `gorm:"foreignKey:EnvironmentID;constraint:OnDelete:SET NULL" json:"-"`
	OrderGarnishItems []OrderGarnishItem `gorm:"foreignKey:EnvironmentID;constraint:OnDelete:SET NULL" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
