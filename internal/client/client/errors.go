package client

import (
	"github.com/dmitrijs2005/usergate/internal/common"
)

// GenericLoginMessage is shown when the server gives no error text.
const GenericLoginMessage = "Login failed"

// AuthError is returned by Login. Message is the text to show on the login
// view: the server-provided error when there is one, GenericLoginMessage
// otherwise.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return e.Message
}

// Unwrap exposes common.ErrAuthenticationFailed and the underlying cause.
func (e *AuthError) Unwrap() []error {
	if e.Err == nil {
		return []error{common.ErrAuthenticationFailed}
	}
	return []error{common.ErrAuthenticationFailed, e.Err}
}
