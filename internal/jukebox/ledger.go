package jukebox

import (
	"sort"

	"github.com/iliyamo/jukebox/internal/model"
	"github.com/iliyamo/jukebox/internal/utils"
)

// ProtectedUsername is the bootstrap administrator that can never be removed.
const ProtectedUsername = "Merlin"

// DefaultBalanceSeconds is the time credit given to new accounts (1500 minutes).
const DefaultBalanceSeconds = 60 * 1500

// Ledger holds every registered account keyed by username.  It is not safe
// for concurrent use; the Jukebox serializes access to it.
type Ledger struct {
	accounts       map[string]*model.Account
	bcryptCost     int
	defaultBalance int
}

// NewLedger returns an empty ledger.  New accounts receive defaultBalance
// seconds of credit and their passwords are hashed with bcryptCost.
func NewLedger(bcryptCost, defaultBalance int) *Ledger {
	return &Ledger{
		accounts:       make(map[string]*model.Account),
		bcryptCost:     bcryptCost,
		defaultBalance: defaultBalance,
	}
}

// Verify reports whether username exists and password matches its stored
// password exactly.
func (l *Ledger) Verify(username, password string) bool {
	a, ok := l.accounts[username]
	if !ok {
		return false
	}
	return utils.VerifyPassword(a.PasswordHash, password)
}

// IsAdmin reports the admin flag of username.  It returns
// ErrAccountNotFound for unknown usernames.
func (l *Ledger) IsAdmin(username string) (bool, error) {
	a, ok := l.accounts[username]
	if !ok {
		return false, ErrAccountNotFound
	}
	return a.IsAdmin, nil
}

// AddOrUpdate creates username with the default balance, or overwrites the
// password and admin flag of an existing account in place.
func (l *Ledger) AddOrUpdate(username, password string, admin bool) (model.AccountChange, error) {
	hash, err := utils.HashPassword(password, l.bcryptCost)
	if err != nil {
		return 0, err
	}
	if a, ok := l.accounts[username]; ok {
		a.PasswordHash = hash
		a.IsAdmin = admin
		return model.AccountUpdated, nil
	}
	l.accounts[username] = &model.Account{
		Username:       username,
		PasswordHash:   hash,
		IsAdmin:        admin,
		BalanceSeconds: l.defaultBalance,
	}
	return model.AccountCreated, nil
}

// Remove deletes username.  It returns false without touching the ledger
// when the account does not exist or is the protected administrator.
func (l *Ledger) Remove(username string) bool {
	if username == ProtectedUsername {
		return false
	}
	if _, ok := l.accounts[username]; !ok {
		return false
	}
	delete(l.accounts, username)
	return true
}

// ResetDailyCounts zeroes every account's selection count.  Balances are
// left alone.
func (l *Ledger) ResetDailyCounts() {
	for _, a := range l.accounts {
		a.SelectionsToday = 0
	}
}

// Get returns a copy of the account stored under username.
func (l *Ledger) Get(username string) (model.Account, bool) {
	a, ok := l.accounts[username]
	if !ok {
		return model.Account{}, false
	}
	return *a, true
}

// List returns copies of all accounts ordered by username.
func (l *Ledger) List() []model.Account {
	out := make([]model.Account, 0, len(l.accounts))
	for _, a := range l.accounts {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out
}

// Len returns the number of accounts.
func (l *Ledger) Len() int { return len(l.accounts) }

// charge debits seconds and counts one selection.  Only the admission path
// calls it, after every check has passed.
func (l *Ledger) charge(username string, seconds int) {
	a := l.accounts[username]
	a.BalanceSeconds -= seconds
	a.SelectionsToday++
}

// put stores an account as-is, replacing any account with the same name.
func (l *Ledger) put(a model.Account) {
	acc := a
	l.accounts[a.Username] = &acc
}
