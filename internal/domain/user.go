package domain

import "time"

const RoleAdmin = "admin"

// User is the read model the booking core needs: identity itself lives in
// the external auth service, but the core reads the current contact email at
// booking creation and lists accounts for the admin console.
type User struct {
	ID        int64
	Username  string
	Email     string
	Role      string
	CreatedAt time.Time
}
