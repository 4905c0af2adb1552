package models

type CartLine struct {
	ID        string `json:"id" bson:"_id" gorm:"primaryKey;size:36"`
	UserID    string `json:"user_id" bson:"user_id" gorm:"uniqueIndex:idx_cart_user_product;size:36"`
	ProductID string `json:"product_id" bson:"product_id" gorm:"uniqueIndex:idx_cart_user_product;size:36"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}

type CartLineInput struct {
	UserID    string `json:"user_id" binding:"required"`
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// CartView is a cart line enriched with catalog display fields.
type CartView struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
}
