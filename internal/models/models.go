package models

// Product rows carry a caller-supplied ID; the primary key constraint is the
// only duplicate protection.
type Product struct {
	ID    int     `gorm:"primaryKey"  json:"id"`
	Name  string  `gorm:"not null"    json:"name"`
	Stock int     `json:"stock"`
	Price float64 `gorm:"not null"    json:"price"`
	Image string  `json:"image"`
}

// User is created out of band; there is no signup route. Password is stored
// and compared as plaintext to match the system this replaces. Never
// serialized.
type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email    string `gorm:"unique;not null"          json:"email"`
	Password string `gorm:"not null"                 json:"-"`
	Role     string `gorm:"not null"                 json:"role"`
}
