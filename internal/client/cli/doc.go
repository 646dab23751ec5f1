// Package cli implements the interactive Blogsphere client: a small REPL
// that signs the user in against the identity provider and drives the
// catalog, wishlist and comment services.
package cli
