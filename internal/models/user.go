package models

// Registered member. Records are never updated once created.
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// Public part of a user returned on login.
type UserProfile struct {
	Name  string `json:"name" example:"Asha Verma"`
	Email string `json:"email" example:"asha@example.com"`
}

func (u User) Profile() UserProfile {
	return UserProfile{Name: u.Name, Email: u.Email}
}
