package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"

	"github.com/moodriver/encore/internal/server"
	"github.com/moodriver/encore/internal/services"
	"github.com/moodriver/encore/internal/shared"
)

// AuthLogin performs the OAuth2 authorization code flow.
//
// Starts a local HTTP server, opens a browser for user authorization, and
// exchanges the auth code for tokens. The access token is printed so it can
// be reused with --token; nothing is persisted.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	noBrowser := cmd.Bool("no-browser")
	manual := cmd.Bool("manual")

	oauthSrv, err := r.oauthService()
	if err != nil {
		return err
	}

	var token *oauth2.Token
	if manual {
		token, err = r.doManualOAuth(ctx, oauthSrv)
	} else {
		token, err = r.doOAuth(oauthSrv, noBrowser)
	}
	if err != nil {
		return err
	}

	if err := r.spotify.Authenticate(ctx, map[string]string{"access_token": token.AccessToken}); err != nil {
		return fmt.Errorf("failed to apply token: %w", err)
	}

	r.writePlainln("✓ Authorization successful")
	r.writePlain("Access token: %s\n", token.AccessToken)
	if token.RefreshToken != "" {
		r.writePlain("Refresh token: %s\n", token.RefreshToken)
	}
	r.writePlain("\nReuse it with: encore curate --token <access token>\n")

	return nil
}

// AuthURL prints the authorization URL without starting a callback server.
func (r *Runner) AuthURL(ctx context.Context, cmd *cli.Command) error {
	oauthSrv, err := r.oauthService()
	if err != nil {
		return err
	}

	state := shared.GenerateState()
	r.writePlain("%s\n", oauthSrv.GetAuthURL(state))
	return nil
}

// AuthToken performs the client credentials flow and prints the app token.
func (r *Runner) AuthToken(ctx context.Context, cmd *cli.Command) error {
	if r.spotify == nil {
		return fmt.Errorf("%w: Spotify service not initialized", shared.ErrServiceUnavailable)
	}

	r.logger.Info("requesting app token via client credentials")

	if err := r.spotify.Authenticate(ctx, map[string]string{"grant_type": "client_credentials"}); err != nil {
		return err
	}

	r.writePlain("✓ Token acquired\n")
	r.writePlain("Access token: %s\n", r.spotifyToken())

	return nil
}

// doManualOAuth runs the authorization code flow without a callback server:
// the user visits the URL out-of-band and pastes the redirected code back.
func (r *Runner) doManualOAuth(ctx context.Context, oauthSrv services.OAuthService) (*oauth2.Token, error) {
	state := shared.GenerateState()

	r.writePlain("Open this URL in your browser and authorize access:\n%s\n\n", oauthSrv.GetAuthURL(state))
	r.writePlain("Paste the authorization code from the redirect URL: ")

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: no authorization code entered", shared.ErrInvalidInput)
	}

	code := strings.TrimSpace(scanner.Text())
	if code == "" {
		return nil, fmt.Errorf("%w: no authorization code entered", shared.ErrInvalidInput)
	}

	token, err := oauthSrv.GetOAuthConfig().Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: token exchange: %v", shared.ErrAuthFailed, err)
	}

	return token, nil
}

// oauthService asserts that the configured service supports the authorization code flow.
func (r *Runner) oauthService() (services.OAuthService, error) {
	if r.spotify == nil {
		return nil, fmt.Errorf("%w: Spotify service not initialized", shared.ErrServiceUnavailable)
	}

	oauthSrv, ok := r.spotify.(services.OAuthService)
	if !ok {
		return nil, fmt.Errorf("%w: service %q does not support browser authorization", shared.ErrInvalidArgument, r.spotify.Name())
	}

	return oauthSrv, nil
}

// ensureAuth authenticates the Spotify service for a command.
//
// A --token flag wins when set. Otherwise commands that modify the playlist
// run the browser flow, since the client credentials grant carries no
// playlist-modify scope; read-only commands use client credentials.
func (r *Runner) ensureAuth(ctx context.Context, cmd *cli.Command, needUserScope bool) error {
	if r.spotify == nil {
		return fmt.Errorf("%w: Spotify service not initialized", shared.ErrServiceUnavailable)
	}

	if token := cmd.String("token"); token != "" {
		return r.spotify.Authenticate(ctx, map[string]string{"access_token": token})
	}

	if !needUserScope {
		return r.spotify.Authenticate(ctx, map[string]string{"grant_type": "client_credentials"})
	}

	oauthSrv, err := r.oauthService()
	if err != nil {
		return err
	}

	token, err := r.doOAuth(oauthSrv, false)
	if err != nil {
		return err
	}

	return r.spotify.Authenticate(ctx, map[string]string{"access_token": token.AccessToken})
}

// doOAuth executes the OAuth2 authorization flow with a local HTTP server
func (r *Runner) doOAuth(oauthSrv services.OAuthService, noBrowser bool) (*oauth2.Token, error) {
	state := shared.GenerateState()

	authURL := oauthSrv.GetAuthURL(state)
	oauthHandler := server.NewOAuthHandler(oauthSrv.GetOAuthConfig(), state)
	router := server.NewBasicRouter()
	router.Use(server.RequestLogger(r.logger))
	router.Handler(oauthHandler)

	serverAddr := fmt.Sprintf("%s:%d", r.config.Server.Host, r.config.Server.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Infof("starting OAuth callback server at %v", serverAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	time.Sleep(100 * time.Millisecond)

	if noBrowser {
		r.writePlain("Open this URL in your browser:\n%s\n\n", authURL)
	} else {
		r.writePlain("→ Opening browser for Spotify authorization...\n")
		if err := shared.OpenBrowser(authURL); err != nil {
			r.logger.Warnf("failed to open browser automatically %v", err)
			r.writePlainln("⚠ Could not open browser automatically.")
			r.writePlain("Please open this URL in your browser:\n%s\n\n", authURL)
		}
	}

	r.writePlain("→ Waiting for authorization (2 minute timeout)...\n")

	timeout := time.NewTimer(2 * time.Minute)
	defer timeout.Stop()

	var result server.OAuthResult

	select {
	case result = <-oauthHandler.Result():
		// Got result from callback
	case err := <-serverErrors:
		return nil, fmt.Errorf("server error: %w", err)
	case <-timeout.C:
		return nil, fmt.Errorf("%w: authorization timed out after 2 minutes", shared.ErrTimeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
	}

	if result.Error() != nil {
		return nil, fmt.Errorf("authorization failed: %w", result.Error())
	}

	if result.Token == nil {
		return nil, fmt.Errorf("no token received")
	}

	return result.Token, nil
}
