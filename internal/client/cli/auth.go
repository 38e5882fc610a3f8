package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/pocketauth/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var (
	errInvalidInput = errors.New("invalid input")
	errRejected     = errors.New("rejected by session manager")
)

// Register shows the signup form, validates it and creates the account.
// On success the user is sent back to the login screen; the new account is
// not signed in. When someone is already signed in the home screen is shown
// instead.
//
// Both password byte slices are wiped before returning.
func (a *App) Register(ctx context.Context) error {
	a.goTo(ctx, ScreenSignup)
	if a.screen != ScreenSignup {
		return nil
	}

	failed := a.tr.T("errors.registration_failed")

	name, err := getSimpleText(a.reader, a.tr.T("signup.full_name_placeholder"), a.out)
	if err != nil {
		return a.inputFailed(ctx, failed, err)
	}
	email, err := getSimpleText(a.reader, a.tr.T("login.email_placeholder"), a.out)
	if err != nil {
		return a.inputFailed(ctx, failed, err)
	}

	password, err := getPassword(a.reader, a.tr.T("common.password"), a.out)
	if err != nil {
		return a.inputFailed(ctx, failed, err)
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.reader, a.tr.T("common.confirm_password"), a.out)
	if err != nil {
		return a.inputFailed(ctx, failed, err)
	}
	defer common.WipeByteArray(confirm)

	if msgs := validateSignup(a.tr, name, email, password, confirm); len(msgs) > 0 {
		a.printErrors(failed, msgs...)
		return errInvalidInput
	}

	if !a.sessions.Register(ctx, name, email, password) {
		a.printErrors(failed, a.tr.T("errors.email_in_use"))
		return errRejected
	}

	a.println(successStyle.Render(a.tr.T("success.account_created")))
	a.goTo(ctx, ScreenLogin)
	return nil
}

// Login shows the login form, validates it and signs the user in. On success
// the home screen is rendered; on failure the user stays on the login screen
// and any previous session is untouched.
//
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	a.goTo(ctx, ScreenLogin)
	if a.screen != ScreenLogin {
		return nil
	}

	failed := a.tr.T("errors.login_failed")

	email, err := getSimpleText(a.reader, a.tr.T("login.email_placeholder"), a.out)
	if err != nil {
		return a.inputFailed(ctx, failed, err)
	}

	password, err := getPassword(a.reader, a.tr.T("common.password"), a.out)
	if err != nil {
		return a.inputFailed(ctx, failed, err)
	}
	defer common.WipeByteArray(password)

	if msgs := validateLogin(a.tr, email, password); len(msgs) > 0 {
		a.printErrors(failed, msgs...)
		return errInvalidInput
	}

	if !a.sessions.Login(ctx, email, password) {
		a.printErrors(failed, a.tr.T("errors.invalid_credentials"))
		return errRejected
	}

	a.goTo(ctx, ScreenHome)
	return nil
}

// inputFailed reports a form field that could not be read and returns err.
func (a *App) inputFailed(ctx context.Context, title string, err error) error {
	a.logger.Warn(ctx, "form input failed", "screen", string(a.screen), "error", err)
	a.printErrors(title, a.tr.T("errors.input_failed"))
	return err
}

// Logout ends the session and returns to the login screen.
func (a *App) Logout(ctx context.Context) error {
	a.sessions.Logout(ctx)
	a.goTo(ctx, ScreenLogin)
	return nil
}

// Navigate switches to the named screen, subject to the auth guard.
func (a *App) Navigate(ctx context.Context, s Screen) error {
	a.goTo(ctx, s)
	return nil
}
