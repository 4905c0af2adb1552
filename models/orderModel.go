package models

import "time"

const OrderStatusPending = "pending"

type Order struct {
	ID            string    `json:"id" bson:"_id" gorm:"primaryKey;size:36"`
	UserID        string    `json:"user_id" bson:"user_id" gorm:"index;size:36"`
	ProductID     string    `json:"product_id" bson:"product_id" gorm:"size:36"`
	Quantity      int       `json:"quantity" bson:"quantity"`
	Status        string    `json:"status" bson:"status" gorm:"size:50"`
	Address       string    `json:"address" bson:"address"`
	PaymentMethod string    `json:"payment_method" bson:"payment_method" gorm:"size:255"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

type OrderLineInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type OrderInput struct {
	UserID         string           `json:"user_id" binding:"required"`
	Cart           []OrderLineInput `json:"cart" binding:"required,min=1,dive"`
	Address        string           `json:"address" binding:"required"`
	PaymentMode    string           `json:"paymentMode" binding:"required"`
	OnlineMethod   string           `json:"onlineMethod"`
	PaymentDetails string           `json:"paymentDetails"`
}
