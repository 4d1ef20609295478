// Package common contains shared constants and sentinel errors used across
// usergate components.
package common

// DefaultSessionKey is the name of the durable entry holding the session token.
const DefaultSessionKey = "token"

// APIKeyHeaderName is the header carrying the reqres API key on outbound requests.
const APIKeyHeaderName = "x-api-key"

// AvatarPlaceholderURL is rendered when a user record has no avatar.
const AvatarPlaceholderURL = "https://via.placeholder.com/150"
