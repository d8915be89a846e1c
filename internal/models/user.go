// internal/models/user.go
package models

// User is the request identity consumed by the URL access policy. Requests
// without credentials are served with a nil *User (anonymous).
type User struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Authenticated bool   `json:"authenticated"`
}
