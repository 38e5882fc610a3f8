package cli

import (
	"context"

	"github.com/dmitrijs2005/pocketauth/internal/session"
)

type Screen string

const (
	ScreenLogin  Screen = "login"
	ScreenSignup Screen = "signup"
	ScreenHome   Screen = "home"
)

// initialScreen picks the first screen once the session has been restored.
func initialScreen(s session.State) Screen {
	if s == session.StateAuthenticated {
		return ScreenHome
	}
	return ScreenLogin
}

// resolve applies the auth guard: login and signup are only for anonymous
// users, home only for signed-in ones.
func resolve(target Screen, s session.State) Screen {
	switch target {
	case ScreenHome:
		if s != session.StateAuthenticated {
			return ScreenLogin
		}
	case ScreenLogin, ScreenSignup:
		if s == session.StateAuthenticated {
			return ScreenHome
		}
	}
	return target
}

// goTo switches to target (after the auth guard) and renders it.
func (a *App) goTo(ctx context.Context, target Screen) {
	a.screen = resolve(target, a.sessions.State())
	a.render(ctx)
}

func (a *App) render(_ context.Context) {
	switch a.screen {
	case ScreenLogin:
		a.println(header(a.tr.T("login.welcome_back"), a.tr.T("login.sign_in_to_continue")))
		a.println(hintStyle.Render(a.tr.T("login.dont_have_account") + " " + a.tr.T("login.sign_up") + ": signup"))
	case ScreenSignup:
		a.println(header(a.tr.T("signup.create_account"), a.tr.T("signup.signup_to_continue")))
		a.println(hintStyle.Render(a.tr.T("signup.already_have_account") + " " + a.tr.T("login.sign_in") + ": login"))
	case ScreenHome:
		s, _ := a.sessions.Current()
		name := s.Name
		if name == "" {
			name = a.tr.T("common.user")
		}
		a.println(homeCard(
			a.tr.Tf("home.welcome", map[string]any{"Name": name}),
			a.tr.T("home.subtitle"),
			a.tr.Tf("home.signed_in_as", map[string]any{"Email": s.Email}),
		))
	}
}

func (a *App) helpText() string {
	switch a.screen {
	case ScreenSignup:
		return a.tr.T("repl.help_signup")
	case ScreenHome:
		return a.tr.T("repl.help_home")
	default:
		return a.tr.T("repl.help_login")
	}
}
