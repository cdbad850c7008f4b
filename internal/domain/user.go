package domain

type User struct {
	ID       int64  `db:"id" json:"id"`
	FullName string `db:"fullname" json:"fullname"`
	Email    string `db:"email" json:"email"`
	Hash     string `db:"password" json:"-"`
	Role     string `db:"role" json:"role"`
}

// Claims is the identity carried inside a session token.
type Claims struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *User) Claims() Claims {
	return Claims{ID: u.ID, Email: u.Email, Role: u.Role}
}
