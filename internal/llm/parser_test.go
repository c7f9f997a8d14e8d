package llm

import (
	"errors"
	"testing"

	"github.com/moodriver/encore/internal/shared"
)

func TestClean(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"Plain JSON Passes Through", `{"songs": []}`, `{"songs": []}`},
		{"Surrounding Whitespace", "  {\"songs\": []}\n\n", `{"songs": []}`},
		{"Single Backticks", "`{\"songs\": []}`", `{"songs": []}`},
		{"Bare Fence", "```\n{\"songs\": []}\n```", `{"songs": []}`},
		{"JSON Fence", "```json\n{\"songs\": []}\n```", `{"songs": []}`},
		{"Empty Input", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clean(tc.input); got != tc.want {
				t.Errorf("Clean(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}

	t.Run("Inner Content Untouched", func(t *testing.T) {
		input := "```json\n{\"songs\": [{\"name\": \"a`b\", \"artist\": \"c\"}]}\n```"
		want := `{"songs": [{"name": "a` + "`" + `b", "artist": "c"}]}`
		if got := Clean(input); got != want {
			t.Errorf("Clean altered inner content: %q", got)
		}
	})
}

func TestParse(t *testing.T) {
	t.Run("Valid Payload", func(t *testing.T) {
		suggestions, err := Parse(`{"songs": [{"name": "Song A", "artist": "Artist A"}, {"name": "Song B", "artist": "Artist B"}]}`)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(suggestions) != 2 {
			t.Fatalf("expected 2 suggestions, got %d", len(suggestions))
		}
		if suggestions[0].Name != "Song A" || suggestions[0].Artist != "Artist A" {
			t.Errorf("unexpected first suggestion %+v", suggestions[0])
		}
		if suggestions[1].Name != "Song B" {
			t.Errorf("suggestions should preserve order, got %+v", suggestions[1])
		}
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		_, err := Parse(`{"songs": [`)
		if !errors.Is(err, shared.ErrBadResponse) {
			t.Errorf("expected ErrBadResponse, got %v", err)
		}
	})

	t.Run("Prose Reply", func(t *testing.T) {
		_, err := Parse(`Sure! Here are some songs you might like.`)
		if !errors.Is(err, shared.ErrBadResponse) {
			t.Errorf("expected ErrBadResponse, got %v", err)
		}
	})

	t.Run("Missing Songs Key", func(t *testing.T) {
		suggestions, err := Parse(`{"tracks": []}`)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(suggestions) != 0 {
			t.Errorf("expected zero suggestions, got %d", len(suggestions))
		}
	})

	t.Run("Fenced Reply Round Trip", func(t *testing.T) {
		raw := "```json\n{\"songs\": [{\"name\": \"Song A\", \"artist\": \"Artist A\"}]}\n```"
		suggestions, err := Parse(Clean(raw))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(suggestions) != 1 {
			t.Errorf("expected 1 suggestion, got %d", len(suggestions))
		}
	})
}
