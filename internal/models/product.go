package models

// Product represents an inventory line item.
//
// Price and Quantity are validated as non-negative at the API boundary;
// Category is free text and may be empty (the view layer displays empty
// categories under a "General" bucket without persisting that label).
type Product struct {
	ID       string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name     string  `json:"name" validate:"required,min=1,max=100"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"gte=0"`
	Category string  `json:"category" validate:"omitempty,max=100"`
}
