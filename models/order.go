package models

type OrderItem struct {
	ProductID string  `bson:"product_id" json:"product_id" validate:"required"`
	Title     string  `bson:"title" json:"title" validate:"required"`
	Price     float64 `bson:"price" json:"price" validate:"gte=0"`
	Size      string  `bson:"size,omitempty" json:"size,omitempty"`
	Qty       *int    `bson:"qty" json:"qty" validate:"required,gte=1"`
}

type Order struct {
	UserID          string         `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Items           []OrderItem    `bson:"items" json:"items" validate:"dive"`
	Total           float64        `bson:"total" json:"total" validate:"gte=0"`
	Currency        string         `bson:"currency" json:"currency" validate:"required"`
	Status          string         `bson:"status" json:"status" validate:"required"`
	Email           string         `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	ShippingAddress map[string]any `bson:"shipping_address,omitempty" json:"shipping_address,omitempty"`
}

func (o *Order) CollectionName() string { return "order" }

func (o *Order) ApplyDefaults() {
	if o.Items == nil {
		o.Items = []OrderItem{}
	}
	if o.Currency == "" {
		o.Currency = "DZD"
	}
	if o.Status == "" {
		o.Status = "pending"
	}
	for i := range o.Items {
		if o.Items[i].Qty == nil {
			qty := 1
			o.Items[i].Qty = &qty
		}
	}
}

// ComputeTotal sums price*qty over the items. A nil qty counts as 1, the
// same default ApplyDefaults fills in.
func ComputeTotal(items []OrderItem) float64 {
	total := 0.0
	for _, item := range items {
		qty := 1
		if item.Qty != nil {
			qty = *item.Qty
		}
		total += item.Price * float64(qty)
	}
	return total
}
