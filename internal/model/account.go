package model

// Account represents a jukebox user as held by the account ledger and
// written to the "AccountList" blob.  The username is the immutable key.
//
// Fields:
//  Username        – unique login name.
//  PasswordHash    – bcrypt hash of the password; the plain value is never stored.
//  IsAdmin         – whether the account may manage other accounts.
//  BalanceSeconds  – remaining time credit in seconds.
//  SelectionsToday – songs admitted for this account since the last rollover.
type Account struct {
	Username        string `json:"username"`
	PasswordHash    string `json:"password_hash"`
	IsAdmin         bool   `json:"is_admin"`
	BalanceSeconds  int    `json:"balance_seconds"`
	SelectionsToday int    `json:"selections_today"`
}

// Role returns the role claim used in access tokens.
func (a Account) Role() string {
	if a.IsAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// Role names carried in the JWT "role" claim.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// AccountChange tells whether AddOrUpdate created a new account or
// overwrote the credentials of an existing one.
type AccountChange int

const (
	AccountCreated AccountChange = iota
	AccountUpdated
)

func (c AccountChange) String() string {
	if c == AccountCreated {
		return "created"
	}
	return "updated"
}
