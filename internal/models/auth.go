package models

import (
	"fmt"

	"github.com/dallinbsmith/tava-team-dashboard-sub001/pkg/tava"
)

type Scope int

const (
	AccessScope  Scope = 0
	RefreshScope Scope = 1
)

type Role string

const (
	RoleMember     Role = "member"
	RoleSupervisor Role = "supervisor"
	RoleAdmin      Role = "admin"
)

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role"`
}

// CanViewTeam reports whether the user may see team-wide
// time off and review requests.
func (u User) CanViewTeam() bool {
	return u.Role == RoleSupervisor || u.Role == RoleAdmin
}

func (u User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

func UserFromAccount(account tava.Account) User {
	return User{
		ID:        account.ID,
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Role:      Role(account.Role),
	}
}
