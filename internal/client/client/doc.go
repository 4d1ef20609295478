// Package client talks to the remote user directory (reqres-compatible
// HTTP+JSON API).
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface): Login,
//     ListUsers, GetUser, UpdateUser, DeleteUser.
//  2. A concrete HTTP implementation (see HTTPClient) that applies a per-call
//     timeout, sends the optional x-api-key header and maps HTTP failures to
//     the sentinel errors of package common.
//
// # Error Handling
//
// Errors match with errors.Is:
//
//   - Login:      common.ErrAuthenticationFailed (always via *AuthError, which
//     carries the message to show the user)
//   - ListUsers:  common.ErrLoadFailed
//   - GetUser:    common.ErrLoadFailed and common.ErrNotFound
//   - UpdateUser: common.ErrUpdateFailed
//   - DeleteUser: common.ErrDeleteIgnored
//
// Transport failures (connection refused, timeouts) additionally match
// common.ErrUnavailable.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation.
package client
