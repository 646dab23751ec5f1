package models

// User is the signed-in identity as reported by the identity provider.
// It exists only in memory for the duration of a session; the provider owns
// its lifecycle.
type User struct {
	Email       string
	DisplayName string
	PhotoURL    string
}
