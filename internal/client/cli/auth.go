package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/usergate/internal/client/client"
)

// Login form defaults: the demo API's known-good account.
const (
	defaultEmail    = "eve.holt@reqres.in"
	defaultPassword = "cityslicka"
)

// getTextWithDefault and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var getTextWithDefault = GetTextWithDefault
var getPassword = GetPassword

// Login prompts for credentials and authenticates through the gate. An
// empty answer takes the demo default. The failure message is the server's
// when it sent one.
func (a *App) Login(ctx context.Context) error {
	email, err := getTextWithDefault(a.in, "Enter email", defaultEmail, a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	if len(password) == 0 {
		password = []byte(defaultPassword)
	}

	if _, err := a.gate.Login(ctx, email, string(password)); err != nil {
		msg := client.GenericLoginMessage
		var ae *client.AuthError
		if errors.As(err, &ae) && ae.Message != "" {
			msg = ae.Message
		}
		a.println(msg)
		return err
	}

	a.list.Reset()
	a.println("Login successful")
	return nil
}

// Logout clears the session; it cannot fail.
func (a *App) Logout(ctx context.Context) error {
	a.gate.Logout(ctx)
	a.list.Reset()
	a.println("Logged out")
	return nil
}
