package models

// Address is a saved shipping or billing address on a user record.
type Address struct {
	Type       string `bson:"type,omitempty" json:"type,omitempty"` // shipping/billing
	Street     string `bson:"street,omitempty" json:"street,omitempty"`
	City       string `bson:"city,omitempty" json:"city,omitempty"`
	State      string `bson:"state,omitempty" json:"state,omitempty"`
	Country    string `bson:"country,omitempty" json:"country,omitempty"`
	PostalCode string `bson:"postal_code,omitempty" json:"postal_code,omitempty"`
}

type User struct {
	Name      string    `bson:"name" json:"name" validate:"required"`
	Email     string    `bson:"email" json:"email" validate:"required,email"`
	Password  string    `bson:"password" json:"password,omitempty" validate:"required,min=6"`
	AvatarURL string    `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	IsActive  *bool     `bson:"is_active" json:"is_active" validate:"required"`
	Wishlist  []string  `bson:"wishlist" json:"wishlist"`
	Addresses []Address `bson:"addresses" json:"addresses" validate:"dive"`
}

func (u *User) CollectionName() string { return "user" }

func (u *User) ApplyDefaults() {
	if u.IsActive == nil {
		active := true
		u.IsActive = &active
	}
	if u.Wishlist == nil {
		u.Wishlist = []string{}
	}
	if u.Addresses == nil {
		u.Addresses = []Address{}
	}
}
