// Package api contains the HTTP handlers, wire models and error mapping
// for the account API. Handlers decode and validate requests, delegate
// to the service layer and translate service errors into stable status
// codes with sanitized messages.
package api
