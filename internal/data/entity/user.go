package entity

// DefaultGender is applied when a user never states one.
const DefaultGender = "Prefer not to say"

type User struct {
	Base
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
	Gender       string `db:"gender"`
}
