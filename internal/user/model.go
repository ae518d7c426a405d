package user

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// User is an asserted identity. The demo performs no credential
// verification; whoever fills in the login form is who they say they
// are.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

type SignupParams struct {
	Username string
	Email    string
	Password string
	Role     Role
}
