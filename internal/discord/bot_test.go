package discord

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCreate(t *testing.T) {
	tests := []struct {
		command   string
		wantName  string
		wantClass string
		wantOK    bool
	}{
		{"criar guerreiro Rolf", "Rolf", "guerreiro", true},
		{"criar mago Lina do Vale", "Lina do Vale", "mago", true},
		{"CRIAR Ladino Sombra", "Sombra", "ladino", true},
		{"criar guerreiro", "", "", true},
		{"criar", "", "", true},
		{"olhar ao redor", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		name, class, ok := parseCreate(tt.command)
		assert.Equal(t, tt.wantOK, ok, "command %q", tt.command)
		assert.Equal(t, tt.wantName, name, "command %q", tt.command)
		assert.Equal(t, tt.wantClass, class, "command %q", tt.command)
	}
}

func TestSplitMessage_ShortMessagePassesThrough(t *testing.T) {
	chunks := splitMessage("uma frase curta", MaxMessageLength)

	require.Len(t, chunks, 1)
	assert.Equal(t, "uma frase curta", chunks[0])
}

func TestSplitMessage_BreaksOnWordBoundaries(t *testing.T) {
	message := strings.Repeat("palavra ", 100)

	chunks := splitMessage(message, 50)

	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 50)
		assert.False(t, strings.HasPrefix(chunk, " "))
		assert.False(t, strings.HasSuffix(chunk, " "))
	}
	assert.Equal(t, strings.Fields(message), strings.Fields(strings.Join(chunks, " ")))
}

func TestSplitMessage_UnbrokenRunIsHardCut(t *testing.T) {
	message := strings.Repeat("a", 120)

	chunks := splitMessage(message, 50)

	require.Len(t, chunks, 3)
	assert.Equal(t, 50, len(chunks[0]))
	assert.Equal(t, 50, len(chunks[1]))
	assert.Equal(t, 20, len(chunks[2]))
}
