package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	helpText() string
	translate(id string, data map[string]any) string
	Navigate(ctx context.Context, s Screen) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands from reader and dispatches them to a until EOF or
// "exit"/"quit". The prompt shows the current screen from statusFn.
//
// Forms read their fields from the same reader, so commands and form input
// can be piped in together.
//
// Errors returned by command handlers are ignored here; handlers report
// problems to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("pa %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "help":
			printlnFn(a.helpText())

		case "login":
			_ = a.Navigate(ctx, ScreenLogin)

		case "signup":
			_ = a.Navigate(ctx, ScreenSignup)

		case "home":
			_ = a.Navigate(ctx, ScreenHome)

		case "signin":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn(a.translate("repl.bye", nil))
			return

		default:
			printlnFn(a.translate("repl.unknown_command", map[string]any{"Command": parts[0]}))
		}
	}
}
