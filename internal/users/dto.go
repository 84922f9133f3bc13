package users

import "time"

// publicUser is the outward-facing projection of an account. It never
// carries the password hash.
type publicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type publicUserWithCreatedAt struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func toPublic(user User) publicUser {
	return publicUser{ID: user.ID, Name: user.Name, Email: user.Email}
}

func toPublicWithCreatedAt(user User) publicUserWithCreatedAt {
	return publicUserWithCreatedAt{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
