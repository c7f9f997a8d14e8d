package shared

import (
	"strings"
	"testing"
)

func TestOpenBrowser(t *testing.T) {
	t.Run("Unsupported Platform", func(t *testing.T) {
		orig := getRuntime
		getRuntime = func() string { return "plan9" }
		defer func() { getRuntime = orig }()

		err := OpenBrowser("https://accounts.spotify.com/authorize")
		if err == nil {
			t.Fatal("expected error on an unsupported platform")
		}
		if !strings.Contains(err.Error(), "plan9") {
			t.Errorf("error should name the platform, got %v", err)
		}
	})
}
