package cli

import (
	"context"
	"fmt"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, signs in against the identity provider and
// installs the resulting identity in the session. The wishlist for the new
// user is loaded right away so membership marks render without extra calls.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	user, tokens, err := a.provider.SignIn(ctx, email, password)
	if err != nil {
		a.notifier.Error(ctx, "Login failed. Check your email and password.")
		a.log.Warn(ctx, "login failed", "email", email, "err", err)
		return err
	}

	a.sess.SignIn(user, tokens)
	a.notifier.Success(ctx, fmt.Sprintf("Signed in as %s.", user.Email))

	if err := a.wishlist.Load(ctx); err != nil {
		// Non-fatal: the notifier already surfaced it, the cache stays empty
		// until the next load.
		a.log.Warn(ctx, "wishlist not loaded after login", "err", err)
	}
	return nil
}

// Logout clears the session; subscribers (the wishlist cache among them)
// react to the sign-out.
func (a *App) Logout(ctx context.Context) error {
	a.sess.SignOut()
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

// requireLogin prompts for login when no session is active. Used by commands
// that need an authenticated user before doing anything.
func (a *App) requireLogin(ctx context.Context) bool {
	if a.isLoggedIn() {
		return true
	}
	fmt.Fprintln(a.out, "Please log in first.")
	if err := a.Login(ctx); err != nil {
		return false
	}
	return a.isLoggedIn()
}
