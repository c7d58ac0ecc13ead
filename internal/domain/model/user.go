package model

// User is the authenticated principal a preference belongs to.
// Name is the key used inside the preferences document.
type User struct {
	Name string
}

func (u *User) IsZero() bool { return u == nil || u.Name == "" }
