package mailer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcome(t *testing.T) {
	m := New("localhost", 25, "", "", "Library <no-reply@library.test>")
	msg, err := m.Render("reader@example.com", "user_welcome.tmpl", map[string]string{"userName": "Ann"})
	require.NoError(t, err)
	assert.Equal(t, []string{"reader@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Welcome to the library!"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Hi Ann,")
}

func TestRenderUnknownTemplate(t *testing.T) {
	m := New("localhost", 25, "", "", "no-reply@library.test")
	_, err := m.Render("reader@example.com", "missing.tmpl", nil)
	assert.Error(t, err)
}
