// Package postgres provides PostgreSQL-backed implementations of the
// store interfaces. The users table carries a UNIQUE constraint on
// username, which is the final authority on username uniqueness; store
// methods translate constraint violations and missing rows into the
// sentinel errors defined in the store package.
package postgres
