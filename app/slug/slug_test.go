package slug

import (
	"strings"
	"testing"
)

func TestMake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"Hello World", "hello-world"},
		{"posts/2024/My First Post.md", "posts-2024-my-first-post-md"},
		{"Canción de Año Nuevo", "cancion-de-ano-nuevo"},
		{"Über straße", "uber-strae"},
		{"  --leading and trailing--  ", "leading-and-trailing"},
		{"multiple   spaces___and...dots", "multiple-spaces-and-dots"},
		{"ＡＢＣ１２３", "abc123"},
		{"日本語", ""},
		{"2024-01-01T10:00:00Z", "2024-01-01t10-00-00z"},
		{"already-a-slug", "already-a-slug"},
	}

	for _, test := range tests {
		result := Make(test.input)
		if result != test.expected {
			t.Errorf("For input %q, expected %q, got %q", test.input, test.expected, result)
		}
	}
}

func TestMakeIsIdempotent(t *testing.T) {
	inputs := []string{
		"Hello, World!",
		"/home/user/blog/Ça va?.md",
		"---",
		"A--B__C",
		"naïve café",
		"",
	}

	for _, input := range inputs {
		once := Make(input)
		twice := Make(once)
		if once != twice {
			t.Errorf("Make is not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestMakeOutputShape(t *testing.T) {
	inputs := []string{
		"UPPER case Title",
		" spaced\tout\nlines ",
		"-edge-",
		"Ωmega ΔELTA",
	}

	for _, input := range inputs {
		result := Make(input)
		if result != strings.ToLower(result) {
			t.Errorf("Slug %q for %q contains uppercase letters", result, input)
		}
		if strings.ContainsAny(result, " \t\n") {
			t.Errorf("Slug %q for %q contains whitespace", result, input)
		}
		if strings.HasPrefix(result, "-") || strings.HasSuffix(result, "-") {
			t.Errorf("Slug %q for %q has leading or trailing hyphen", result, input)
		}
		if strings.Contains(result, "--") {
			t.Errorf("Slug %q for %q has repeated hyphens", result, input)
		}
	}
}
