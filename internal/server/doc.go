// Package server provides the loopback HTTP server used during the Spotify
// authorization code flow.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # OAuth Callback Handler
//
// [OAuthHandler] implements the OAuth2 authorization code callback.
//
// The handler validates the state parameter (CSRF protection), exchanges the
// authorization code for tokens, and sends the result through a channel.
// It only processes one callback to prevent replay attacks.
//
// # Usage
//
// When the user runs `encore auth login`, a temporary HTTP server starts on
// the configured redirect address, handles the callback, and shuts down after
// delivering the token to the CLI.
package server
