package model

// User — владелец записей, категорий и контактов.
type User struct {
	ID          int64   `gorm:"primaryKey" json:"id"`
	Username    string  `gorm:"uniqueIndex;not null" json:"username"`
	Password    string  `gorm:"not null" json:"-"` // bcrypt-хеш
	DisplayName *string `json:"displayName"`
	Email       *string `json:"email"`
}

// InsertUser — поля для создания пользователя.
type InsertUser struct {
	Username    string
	Password    string
	DisplayName *string
	Email       *string
}
