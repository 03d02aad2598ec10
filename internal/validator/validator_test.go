package validator

import (
	"testing"

	"github.com/gabriel-vasile/mimetype"
	"github.com/stretchr/testify/assert"
)

func TestValidatorKeepsFirstError(t *testing.T) {
	v := New()
	assert.True(t, v.Valid())

	v.Check(false, "isbn", "must be provided")
	v.Check(false, "isbn", "must not be more than 13 characters")
	v.Check(true, "title", "must be provided")

	assert.False(t, v.Valid())
	assert.Equal(t, map[string]string{"isbn": "must be provided"}, v.Errors)
}

func TestHelpers(t *testing.T) {
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"in list", In("o", "m", "o", "a", "r"), true},
		{"not in list", In("x", "m", "o", "a", "r"), false},
		{"valid email", Matches("reader@example.com", EmailRX), true},
		{"invalid email", Matches("reader@", EmailRX), false},
		{"unique ids", Unique([]int64{1, 2, 3}), true},
		{"duplicate ids", Unique([]int64{1, 2, 1}), false},
		{"cyrillic within limit", MaxChars("Дюна", 4), true},
		{"ascii over limit", MaxChars("Dune!", 4), false},
		{"text not blank", NotBlank(" Dune "), true},
		{"whitespace blank", NotBlank(" \t\n"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestMime(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	assert.True(t, Mime(mimetype.Detect(png), "image/jpeg", "image/png"))
	assert.False(t, Mime(mimetype.Detect([]byte("plain text")), "image/jpeg", "image/png"))
}
