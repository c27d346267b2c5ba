package domain

type Category struct {
	CategoryID    int64
	CategoryTitle string
	ImageURL      string
}

// Product embeds its Category inline: the products store joins the category
// row on read and persists only Category.CategoryID on write.
type Product struct {
	ProductID    int64
	ProductTitle string
	ImageURL     string
	SKU          string
	PriceUnit    float64
	Quantity     int32
	Category     Category
}
