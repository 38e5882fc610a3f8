// Package session implements the device-local account registry and the single
// current session.
//
// A Manager is created once per process and handed to the front-end. It
// keeps two records in a kvstore.Store:
//
//	@users        JSON array of registered accounts
//	@currentUser  JSON object of the signed-in session, absent when signed out
//
// The manager moves through Unknown -> Anonymous|Authenticated (RestoreSession,
// once) and then between Anonymous and Authenticated via Login and Logout.
// Every failure is logged and absorbed: callers only ever see a bool result
// or the updated state.
package session
