// Package cli provides the interactive pocketauth terminal client.
//
// It wires configuration, the key-value store, the session manager and a
// small REPL standing in for three screens: login, signup and home. On start
// the stored session is restored; the first screen is home when that
// succeeded and login otherwise.
//
// Commands
//
//	login | signup | home   switch screen
//	signin                  fill in and submit the login form
//	register                fill in and submit the signup form
//	logout                  sign out and return to login
//	help                    list commands for the current screen
//	exit | quit             leave the program
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
