// Package kvstore provides the durable string-keyed store that holds the
// account list and the current session.
//
// Three backends implement Store and Updater:
//
//   - MemoryStore: process-local map, used in tests and with -s memory
//   - SQLiteStore: single table in a local SQLite file (default)
//   - RedisStore:  keys in a Redis database, optionally prefixed
//
// Get returns (nil, nil) for an absent key; Delete of an absent key is not an
// error. Update is an atomic read-modify-write of one key.
package kvstore
