package safety

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SMCNetwolf/LLMGame/internal/domain"
)

func TestCheckPlayerInput_CleanCommandPasses(t *testing.T) {
	f := NewFilter()

	ok, rejection := f.CheckPlayerInput(context.Background(), "ir para a Floresta Sombria")
	assert.True(t, ok)
	assert.Empty(t, rejection)
}

func TestCheckPlayerInput_ExcessiveViolence(t *testing.T) {
	f := NewFilter()
	ctx := context.Background()

	// A single indicator is tolerated, fantasy combat is part of the game
	ok, _ := f.CheckPlayerInput(ctx, "quero matar o lobo")
	assert.True(t, ok)

	// Two indicators tip it over
	ok, rejection := f.CheckPlayerInput(ctx, "matar e torturar o bandido")
	assert.False(t, ok)
	assert.Equal(t, RejectionViolent, rejection)
}

func TestCheckPlayerInput_OutOfContext(t *testing.T) {
	f := NewFilter()

	ok, rejection := f.CheckPlayerInput(context.Background(), "ligar para o telefone do ferreiro")
	assert.False(t, ok)
	assert.Equal(t, RejectionOutOfContext, rejection)
}

func TestCheckPlayerInput_RegisteredTerms(t *testing.T) {
	f := NewFilter()
	ctx := context.Background()

	require.NoError(t, f.AddTerm(ctx, "palavrão", SeverityHigh))

	ok, rejection := f.CheckPlayerInput(ctx, "dizer um PALAVRÃO para o guarda")
	assert.False(t, ok)
	assert.Equal(t, RejectionOffensive, rejection)

	// Removing the term lets the input through again
	require.NoError(t, f.RemoveTerm(ctx, "palavrão", SeverityHigh))
	ok, _ = f.CheckPlayerInput(ctx, "dizer um palavrão para o guarda")
	assert.True(t, ok)
}

func TestCheckPlayerInput_LowSeverityAccumulation(t *testing.T) {
	f := NewFilter()
	ctx := context.Background()

	for _, term := range []string{"droga", "maldito", "idiota"} {
		require.NoError(t, f.AddTerm(ctx, term, SeverityLow))
	}

	// Two low severity terms pass
	ok, _ := f.CheckPlayerInput(ctx, "droga, maldito lobo")
	assert.True(t, ok)

	// Three reject
	ok, rejection := f.CheckPlayerInput(ctx, "droga, maldito lobo idiota")
	assert.False(t, ok)
	assert.Equal(t, RejectionOffensive, rejection)
}

func TestAddTerm_Validation(t *testing.T) {
	f := NewFilter()
	ctx := context.Background()

	err := f.AddTerm(ctx, "termo", Severity("extreme"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = f.AddTerm(ctx, "  ", SeverityLow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, f.AddTerm(ctx, "termo", SeverityLow))
	err = f.AddTerm(ctx, "TERMO", SeverityLow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = f.RemoveTerm(ctx, "inexistente", SeverityLow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCheckAIResponse_HighSeverityReplacesWholeResponse(t *testing.T) {
	f := NewFilter()
	ctx := context.Background()
	require.NoError(t, f.AddTerm(ctx, "proibido", SeverityHigh))

	ok, text := f.CheckAIResponse(ctx, "O mago diz algo proibido na taverna.")
	assert.False(t, ok)
	assert.Equal(t, ReplacedResponse, text)
}

func TestCheckAIResponse_MediumSeverityRedactsInPlace(t *testing.T) {
	f := NewFilter()
	ctx := context.Background()
	require.NoError(t, f.AddTerm(ctx, "impróprio", SeverityMedium))

	ok, text := f.CheckAIResponse(ctx, "Um gesto impróprio do bandido.")
	assert.False(t, ok)
	assert.Equal(t, "Um gesto "+RedactedContent+" do bandido.", text)
}

func TestCheckAIResponse_SoftensViolencePhrasing(t *testing.T) {
	f := NewFilter()

	ok, text := f.CheckAIResponse(context.Background(), "O golpe acerta com sangue jorrando da ferida.")
	assert.True(t, ok)
	assert.NotContains(t, text, "sangue jorrando")
	assert.Contains(t, text, CombatPlaceholder)
}

func TestCheckAIResponse_CleanTextUntouched(t *testing.T) {
	f := NewFilter()
	original := "A floresta se abre para uma clareira banhada pela luz da lua."

	ok, text := f.CheckAIResponse(context.Background(), original)
	assert.True(t, ok)
	assert.Equal(t, original, text)
}

func TestFilterImagePrompt_AddsStyleAndTruncates(t *testing.T) {
	f := NewFilter()
	ctx := context.Background()

	ok, prompt := f.FilterImagePrompt(ctx, "Uma vila pacífica ao amanhecer")
	assert.True(t, ok)
	assert.True(t, strings.HasPrefix(prompt, SafeImagePromptStyle))
	assert.LessOrEqual(t, len([]rune(prompt)), ImagePromptMaxLen)

	long := strings.Repeat("floresta ", 60)
	ok, prompt = f.FilterImagePrompt(ctx, long)
	assert.True(t, ok)
	assert.LessOrEqual(t, len([]rune(prompt)), ImagePromptMaxLen)
}

func TestFilterImagePrompt_StripsMetaprompt(t *testing.T) {
	f := NewFilter()

	ok, prompt := f.FilterImagePrompt(context.Background(), "gere uma imagem de castelo com DALL-E")
	assert.True(t, ok)
	lower := strings.ToLower(prompt)
	assert.NotContains(t, lower, "gere ")
	assert.NotContains(t, lower, "dall-e")
}

func TestFilterImagePrompt_BlockedPatterns(t *testing.T) {
	f := NewFilter()
	ctx := context.Background()

	for _, bad := range []string{
		"cena sangrenta de batalha",
		"guerreiro com gore",
		"retrato realístico demais do rei",
	} {
		ok, prompt := f.FilterImagePrompt(ctx, bad)
		assert.False(t, ok, bad)
		assert.Equal(t, SafeImageFallback, prompt, bad)
	}
}

func TestWrapPrompt(t *testing.T) {
	f := NewFilter()

	wrapped := f.WrapPrompt("o herói entra na taverna")
	assert.True(t, strings.HasPrefix(wrapped, PromptSafetyPrefix))
	assert.True(t, strings.HasSuffix(wrapped, PromptSafetySuffix))
	assert.Contains(t, wrapped, "o herói entra na taverna")
}

func TestSafeRequest_RejectedInputNeverCallsGenerator(t *testing.T) {
	f := NewFilter()
	called := false

	text, err := f.SafeRequest(context.Background(), "usar o computador da vila",
		func(ctx context.Context, prompt string) (string, error) {
			called = true
			return "", nil
		})
	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, RejectionOutOfContext, text)
}

func TestSafeRequest_WrapsAndScreens(t *testing.T) {
	f := NewFilter()
	ctx := context.Background()
	require.NoError(t, f.AddTerm(ctx, "impróprio", SeverityMedium))

	var seenPrompt string
	text, err := f.SafeRequest(ctx, "explorar as ruínas",
		func(ctx context.Context, prompt string) (string, error) {
			seenPrompt = prompt
			return "Algo impróprio acontece.", nil
		})
	require.NoError(t, err)
	assert.Contains(t, seenPrompt, PromptSafetyPrefix)
	assert.Contains(t, seenPrompt, "explorar as ruínas")
	assert.Equal(t, "Algo "+RedactedContent+" acontece.", text)
}

func TestSafeRequest_PropagatesGeneratorError(t *testing.T) {
	f := NewFilter()
	boom := errors.New("provider down")

	_, err := f.SafeRequest(context.Background(), "explorar as ruínas",
		func(ctx context.Context, prompt string) (string, error) {
			return "", boom
		})
	assert.ErrorIs(t, err, boom)
}
