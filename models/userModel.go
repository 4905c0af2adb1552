package models

import "time"

type User struct {
	ID        string    `json:"id" bson:"_id" gorm:"primaryKey;size:36"`
	Username  string    `json:"username" bson:"username" gorm:"uniqueIndex;size:100;not null"`
	Password  string    `json:"-" bson:"password" gorm:"not null"`
	IsAdmin   bool      `json:"is_admin" bson:"is_admin"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`

	CartLines []CartLine `json:"-" bson:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Orders    []Order    `json:"-" bson:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Addresses []Address  `json:"-" bson:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type SignupData struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	IsAdmin  bool   `json:"is_admin"`
}

type LoginData struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// PublicUser is the serializable view of a user. The password hash never
// leaves through this type.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin}
}
