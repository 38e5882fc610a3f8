package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/pocketauth/internal/common"
	"github.com/dmitrijs2005/pocketauth/internal/cryptox"
	"github.com/dmitrijs2005/pocketauth/internal/kvstore"
	"github.com/dmitrijs2005/pocketauth/internal/logging"
	"github.com/jonboulle/clockwork"
)

// Manager owns the account list and the current session.
//
// Operations against the store are serialized by the manager, and the
// account list is rewritten through kvstore.Updater when the store has one,
// so concurrent Register calls can never store two accounts with the same
// email.
type Manager struct {
	store  kvstore.Store
	logger logging.Logger
	clock  clockwork.Clock
	tokens TokenGenerator
	params cryptox.Params

	// mu serializes store operations.
	mu       sync.Mutex
	restored bool

	stateMu sync.RWMutex
	current *Session
	loading bool
}

// Option customizes a Manager built by NewManager.
type Option func(*Manager)

// WithClock sets the clock that stamps Session.LoggedInAt.
func WithClock(c clockwork.Clock) Option {
	return func(m *Manager) { m.clock = c }
}

// WithTokens replaces the default UUIDTokens generator.
func WithTokens(g TokenGenerator) Option {
	return func(m *Manager) { m.tokens = g }
}

// WithHashParams sets the argon2id cost used for new and checked credentials.
func WithHashParams(p cryptox.Params) Option {
	return func(m *Manager) { m.params = p }
}

// NewManager returns a Manager over store. It starts in StateUnknown with
// Loading true; call RestoreSession once at start-up.
func NewManager(store kvstore.Store, logger logging.Logger, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		logger:  logger.With("component", "session"),
		clock:   clockwork.NewRealClock(),
		tokens:  UUIDTokens{},
		params:  cryptox.DefaultParams,
		loading: true,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Current returns a copy of the signed-in session, if any.
func (m *Manager) Current() (Session, bool) {
	m.stateMu.RLock()
	defer m.stateMu.RUnlock()
	if m.current == nil {
		return Session{}, false
	}
	return *m.current, true
}

// Loading reports whether RestoreSession has not completed yet.
func (m *Manager) Loading() bool {
	m.stateMu.RLock()
	defer m.stateMu.RUnlock()
	return m.loading
}

// State reports where the manager is in the session state machine.
func (m *Manager) State() State {
	m.stateMu.RLock()
	defer m.stateMu.RUnlock()
	switch {
	case m.loading:
		return StateUnknown
	case m.current != nil:
		return StateAuthenticated
	default:
		return StateAnonymous
	}
}

func (m *Manager) setCurrent(s *Session) {
	m.stateMu.Lock()
	defer m.stateMu.Unlock()
	m.current = s
}

// RestoreSession loads the persisted session, if any. It is meant to run once
// at start-up; later calls do nothing. Loading is false afterwards whatever
// happened.
func (m *Manager) RestoreSession(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.restored {
		return
	}
	m.restored = true

	defer func() {
		m.stateMu.Lock()
		m.loading = false
		m.stateMu.Unlock()
	}()

	data, err := m.store.Get(ctx, SessionKey)
	if err != nil {
		m.logger.Error(ctx, "failed to load session", "error", err)
		return
	}
	if data == nil {
		m.logger.Debug(ctx, "no stored session")
		return
	}

	s, err := decodeSession(data)
	if err != nil {
		m.logger.Warn(ctx, "ignoring unreadable session", "error", err)
		return
	}

	m.setCurrent(&s)
	m.logger.Info(ctx, "session restored", "email", s.Email)
}

// Register adds a new account. It returns false when the email is already
// registered or the store fails. It does not sign the new account in.
//
// Name, email format and password length are the caller's business.
func (m *Manager) Register(ctx context.Context, name, email string, password []byte) bool {
	salt, verifier := cryptox.NewCredential(password, m.params)
	params := m.params
	account := Account{Name: name, Email: email, Salt: salt, Verifier: verifier, KDF: &params}

	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.updateAccounts(ctx, func(accounts []Account) ([]Account, error) {
		if indexByEmail(accounts, email) >= 0 {
			return nil, common.ErrEmailTaken
		}
		return append(accounts, account), nil
	})
	switch {
	case errors.Is(err, common.ErrEmailTaken):
		m.logger.Info(ctx, "registration rejected", "email", email, "reason", err)
		return false
	case err != nil:
		m.logger.Error(ctx, "registration failed", "email", email, "error", err)
		return false
	}

	m.logger.Info(ctx, "account registered", "email", email)
	return true
}

// Login signs in the account matching email and password, replacing any
// current session. It returns false when no account matches or the store
// fails; the current session is then left as it was.
func (m *Manager) Login(ctx context.Context, email string, password []byte) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	accounts, err := m.loadAccounts(ctx)
	if err != nil {
		m.logger.Error(ctx, "login failed", "email", email, "error", err)
		return false
	}

	account, ok := m.match(accounts, email, password)
	if !ok {
		m.logger.Info(ctx, "login rejected", "email", email, "reason", common.ErrInvalidCredentials)
		return false
	}

	token, err := m.tokens.NewToken()
	if err != nil {
		m.logger.Error(ctx, "login failed", "email", email, "error", err)
		return false
	}

	s := Session{
		Name:       account.Name,
		Email:      account.Email,
		Token:      token,
		LoggedInAt: m.clock.Now().UTC(),
	}
	data, err := encodeSession(s)
	if err != nil {
		m.logger.Error(ctx, "login failed", "email", email, "error", err)
		return false
	}
	if err := m.store.Set(ctx, SessionKey, data); err != nil {
		m.logger.Error(ctx, "login failed", "email", email, "error", err)
		return false
	}

	m.setCurrent(&s)
	m.logger.Info(ctx, "signed in", "email", email)
	return true
}

// Logout removes the stored session and clears the current one. Calling it
// while signed out is harmless.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Delete(ctx, SessionKey); err != nil {
		m.logger.Error(ctx, "failed to remove stored session", "error", err)
	}

	if prev, ok := m.Current(); ok {
		m.logger.Info(ctx, "signed out", "email", prev.Email)
	}
	m.setCurrent(nil)
}

func (m *Manager) loadAccounts(ctx context.Context) ([]Account, error) {
	data, err := m.store.Get(ctx, UsersKey)
	if err != nil {
		return nil, err
	}
	return decodeAccounts(data)
}

// updateAccounts applies fn to the stored account list and writes the result
// back. fn's error aborts the write and is returned as is.
func (m *Manager) updateAccounts(ctx context.Context, fn func([]Account) ([]Account, error)) error {
	apply := func(current []byte) ([]byte, error) {
		accounts, err := decodeAccounts(current)
		if err != nil {
			return nil, err
		}
		next, err := fn(accounts)
		if err != nil {
			return nil, err
		}
		return encodeAccounts(next)
	}

	if u, ok := m.store.(kvstore.Updater); ok {
		return u.Update(ctx, UsersKey, apply)
	}

	// m.mu is held, which is enough within one process.
	current, err := m.store.Get(ctx, UsersKey)
	if err != nil {
		return err
	}
	next, err := apply(current)
	if err != nil {
		return err
	}
	return m.store.Set(ctx, UsersKey, next)
}

// match returns the first account with this email whose credential accepts
// password.
func (m *Manager) match(accounts []Account, email string, password []byte) (Account, bool) {
	for _, a := range accounts {
		if a.Email != email {
			continue
		}
		if m.checkPassword(a, password) {
			return a, true
		}
	}
	return Account{}, false
}

func (m *Manager) checkPassword(a Account, password []byte) bool {
	if len(a.Verifier) > 0 {
		params := m.params
		if a.KDF != nil {
			params = *a.KDF
		}
		return cryptox.Verify(password, a.Salt, a.Verifier, params)
	}
	if a.Password != "" {
		return cryptox.EqualPlain([]byte(a.Password), password)
	}
	return false
}

func indexByEmail(accounts []Account, email string) int {
	for i, a := range accounts {
		if a.Email == email {
			return i
		}
	}
	return -1
}
