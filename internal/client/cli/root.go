package cli

import (
	"context"
)

func (a *App) translate(id string, data map[string]any) string {
	return a.tr.Tf(id, data)
}

func (a *App) getStatus() string {
	s := string(a.screen)
	if cur, ok := a.sessions.Current(); ok {
		s = cur.Email + " " + s
	}
	return "(" + s + ")"
}

// Root restores the stored session, renders the first screen and runs the
// command loop on the app's input.
func (a *App) Root(ctx context.Context) {
	a.println(a.tr.T("repl.welcome"))

	a.println(subtitleStyle.Render(a.tr.T("common.loading")))
	a.sessions.RestoreSession(ctx)

	a.screen = initialScreen(a.sessions.State())
	a.render(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}
