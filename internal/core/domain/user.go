package domain

// User is an authenticated actor.
type User struct {
	UserID       string `json:"userID"` // Primary key (UUID)
	Name         string `json:"name"`
	Email        string `json:"email"` // Unique login identifier
	PasswordHash string `json:"-"`
	IsDeleted    bool   `json:"isDeleted"`
	AuditFields
}
