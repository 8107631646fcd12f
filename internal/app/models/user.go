package models

// User is an ADMIN or STAFF account.
type User struct {
	UserID       int64      `json:"userId" db:"userid"`
	Name         string     `json:"name" db:"name"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"passwordhash"`
	Role         RoleType   `json:"role" db:"role"`
	IsActive     ActiveFlag `json:"isActive" db:"isactive"`
	Audit
}
