package models

type Product struct {
	ID          string  `json:"id" bson:"_id" gorm:"primaryKey;size:36"`
	Name        string  `json:"name" bson:"name" gorm:"size:100;not null"`
	Price       float64 `json:"price" bson:"price" gorm:"not null"`
	Image       string  `json:"image" bson:"image"`
	Category    string  `json:"category" bson:"category" gorm:"size:50"`
	Description string  `json:"description" bson:"description"`

	CartLines []CartLine `json:"-" bson:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Orders    []Order    `json:"-" bson:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
