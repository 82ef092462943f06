package models

type Review struct {
	ProductID string `bson:"product_id" json:"product_id" validate:"required"`
	UserName  string `bson:"user_name" json:"user_name" validate:"required"`
	Rating    int    `bson:"rating" json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string `bson:"comment,omitempty" json:"comment,omitempty"`
}

func (r *Review) CollectionName() string { return "review" }

func (r *Review) ApplyDefaults() {}
