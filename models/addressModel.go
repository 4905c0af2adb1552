package models

type Address struct {
	ID      string `json:"id" bson:"_id" gorm:"primaryKey;size:36"`
	UserID  string `json:"user_id" bson:"user_id" gorm:"index;size:36"`
	Address string `json:"address" bson:"address"`
}

type AddressInput struct {
	UserID  string `json:"user_id" binding:"required"`
	Address string `json:"address" binding:"required"`
}
