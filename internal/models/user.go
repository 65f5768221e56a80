package models

// User is the database representation of a user.
type User struct {
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	IsDeleted    bool   `db:"is_deleted"`
	AuditFields
}
