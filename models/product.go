package models

type ProductImage struct {
	URL string `bson:"url" json:"url" validate:"required"`
	Alt string `bson:"alt,omitempty" json:"alt,omitempty"`
}

type Product struct {
	Title        string         `bson:"title" json:"title" validate:"required"`
	Description  string         `bson:"description,omitempty" json:"description,omitempty"`
	Price        *float64       `bson:"price" json:"price" validate:"required,gte=0"`
	Category     string         `bson:"category" json:"category" validate:"required"` // e.g., t-shirt, tracksuit, hoodie
	Color        string         `bson:"color" json:"color" validate:"required"`
	Collection   string         `bson:"collection" json:"collection" validate:"required"` // home | training | retro
	Sizes        []string       `bson:"sizes" json:"sizes"`
	Images       []ProductImage `bson:"images" json:"images" validate:"dive"`
	Rating       *float64       `bson:"rating" json:"rating" validate:"required,gte=0,lte=5"`
	ReviewsCount *int           `bson:"reviews_count" json:"reviews_count" validate:"required,gte=0"`
	InStock      *bool          `bson:"in_stock" json:"in_stock" validate:"required"`
}

func (p *Product) CollectionName() string { return "product" }

func (p *Product) ApplyDefaults() {
	if p.Sizes == nil {
		p.Sizes = []string{}
	}
	if p.Images == nil {
		p.Images = []ProductImage{}
	}
	if p.Rating == nil {
		rating := 4.8
		p.Rating = &rating
	}
	if p.ReviewsCount == nil {
		count := 0
		p.ReviewsCount = &count
	}
	if p.InStock == nil {
		inStock := true
		p.InStock = &inStock
	}
}
