package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/pocketauth/internal/i18n"
	"github.com/dmitrijs2005/pocketauth/internal/logging"
	"github.com/dmitrijs2005/pocketauth/internal/session"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct {
	state   session.State
	current *session.Session

	regOK   bool
	loginOK bool

	regName, regEmail string
	regPass           []byte
	loginEmail        string
	loginPass         []byte

	calls []string
}

func (f *fakeSessions) RestoreSession(context.Context) {
	f.calls = append(f.calls, "restore")
	if f.state == session.StateUnknown {
		f.state = session.StateAnonymous
	}
}

func (f *fakeSessions) Register(_ context.Context, name, email string, password []byte) bool {
	f.calls = append(f.calls, "register")
	f.regName, f.regEmail, f.regPass = name, email, append([]byte(nil), password...)
	return f.regOK
}

func (f *fakeSessions) Login(_ context.Context, email string, password []byte) bool {
	f.calls = append(f.calls, "login")
	f.loginEmail, f.loginPass = email, append([]byte(nil), password...)
	if f.loginOK {
		f.current = &session.Session{Name: "Ann", Email: email, Token: "token-1"}
		f.state = session.StateAuthenticated
	}
	return f.loginOK
}

func (f *fakeSessions) Logout(context.Context) {
	f.calls = append(f.calls, "logout")
	f.current = nil
	f.state = session.StateAnonymous
}

func (f *fakeSessions) Current() (session.Session, bool) {
	if f.current == nil {
		return session.Session{}, false
	}
	return *f.current, true
}

func (f *fakeSessions) State() session.State { return f.state }

func signedIn(name, email string) *fakeSessions {
	return &fakeSessions{
		state:   session.StateAuthenticated,
		current: &session.Session{Name: name, Email: email, Token: "token-0"},
	}
}

func newTestApp(t *testing.T, sm SessionManager, input string) (*App, *bytes.Buffer) {
	t.Helper()
	tr, err := i18n.New("en")
	require.NoError(t, err)

	var out bytes.Buffer
	return &App{
		sessions: sm,
		tr:       tr,
		logger:   logging.Discard(),
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      &out,
	}, &out
}

// stubInputs feeds form fields from texts and passwords in order. A field read
// beyond the end of either queue yields io.EOF.
func stubInputs(t *testing.T, texts []string, passwords []string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		v := texts[0]
		texts = texts[1:]
		return v, nil
	}
	getPassword = func(_ *bufio.Reader, _ string, _ io.Writer) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		v := passwords[0]
		passwords = passwords[1:]
		return []byte(v), nil
	}
}

// stubPasswords replaces only the password prompt, leaving text fields to be
// read from the app's reader.
func stubPasswords(t *testing.T, passwords ...string) {
	t.Helper()
	orig := getPassword
	t.Cleanup(func() { getPassword = orig })

	getPassword = func(_ *bufio.Reader, _ string, _ io.Writer) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		v := passwords[0]
		passwords = passwords[1:]
		return []byte(v), nil
	}
}

func failOnInput(t *testing.T) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) {
		t.Fatal("unexpected text prompt")
		return "", nil
	}
	getPassword = func(*bufio.Reader, string, io.Writer) ([]byte, error) {
		t.Fatal("unexpected password prompt")
		return nil, nil
	}
}

// pipedStdin makes GetPassword behave as if stdin were redirected.
func pipedStdin(t *testing.T) {
	t.Helper()
	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })
	isTerminal = func(int) bool { return false }
}
