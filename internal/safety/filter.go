package safety

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/SMCNetwolf/LLMGame/internal/domain"
	"github.com/SMCNetwolf/LLMGame/internal/logger"
)

// Severity tiers for filtered terms. High and medium severity terms
// reject player input outright; low severity terms reject only when
// three or more occur together.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Violence indicators in player input; two or more reject the command.
var violenceIndicators = []string{"matar", "assassinar", "torturar", "mutilar", "decapitar", "eviscerar"}

// Modern-world terms that break the medieval setting; one rejects.
var outOfContextIndicators = []string{"internet", "telefone", "computador", "carro", "avião", "televisão", "arma de fogo"}

// Violence phrasing redacted from generated responses.
var responseViolenceIndicators = []string{"sangue jorrando", "entranha", "desmembramento", "tortura", "agonia excruciante"}

// Metaprompt fragments stripped from image prompts before submission.
var metapromptTerms = []string{"tentando", "gpt", "gere ", "gerando", "openai", "dall-e"}

var problematicImagePatterns = []*regexp.Regexp{
	regexp.MustCompile(`nu[ad]ez`),
	regexp.MustCompile(`sem roup[ao]`),
	regexp.MustCompile(`pouca[s]? roup[ao]`),
	regexp.MustCompile(`reveladoras?`),
	regexp.MustCompile(`seminuas?`),
	regexp.MustCompile(`scantily`),
	regexp.MustCompile(`explicit[ao]`),
	regexp.MustCompile(`gore`),
	regexp.MustCompile(`sangrento`),
	regexp.MustCompile(`mutilação`),
	regexp.MustCompile(`decapitação`),
	regexp.MustCompile(`real[íi]stico demais`),
}

// Filter screens player input, generated responses and image prompts.
// The term lists start empty and are managed at runtime through
// AddTerm/RemoveTerm; the structural rules (violence, out-of-context,
// image patterns) are fixed.
type Filter struct {
	mu    sync.RWMutex
	terms map[Severity][]string
}

// NewFilter creates a filter with empty term lists.
func NewFilter() *Filter {
	return &Filter{
		terms: map[Severity][]string{
			SeverityHigh:   {},
			SeverityMedium: {},
			SeverityLow:    {},
		},
	}
}

// AddTerm registers a term at a severity tier. Duplicate terms (case
// insensitive) are rejected.
func (f *Filter) AddTerm(ctx context.Context, term string, severity Severity) error {
	if severity != SeverityHigh && severity != SeverityMedium && severity != SeverityLow {
		return fmt.Errorf("%w: severity %q", domain.ErrInvalidInput, severity)
	}
	if strings.TrimSpace(term) == "" {
		return fmt.Errorf("%w: empty term", domain.ErrInvalidInput)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	lower := strings.ToLower(term)
	for _, existing := range f.terms[severity] {
		if strings.ToLower(existing) == lower {
			return fmt.Errorf("%w: term %q already registered", domain.ErrInvalidInput, term)
		}
	}
	f.terms[severity] = append(f.terms[severity], term)

	logger.FromContext(ctx).Info(LogMsgTermAdded, "severity", string(severity))
	return nil
}

// RemoveTerm unregisters a term from a severity tier.
func (f *Filter) RemoveTerm(ctx context.Context, term string, severity Severity) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	lower := strings.ToLower(term)
	for i, existing := range f.terms[severity] {
		if strings.ToLower(existing) == lower {
			f.terms[severity] = slices.Delete(f.terms[severity], i, i+1)
			logger.FromContext(ctx).Info(LogMsgTermRemoved, "severity", string(severity))
			return nil
		}
	}
	return fmt.Errorf("%w: term %q not registered at %s severity", domain.ErrInvalidInput, term, severity)
}

// CheckPlayerInput screens a command before it reaches the engine.
// Returns false with a player-facing rejection message when the input
// violates the content rules. The rule order is fixed: high severity,
// medium severity, accumulated low severity, violence, out-of-context.
func (f *Filter) CheckPlayerInput(ctx context.Context, text string) (bool, string) {
	lower := strings.ToLower(text)

	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, severity := range []Severity{SeverityHigh, SeverityMedium} {
		for _, term := range f.terms[severity] {
			if strings.Contains(lower, strings.ToLower(term)) {
				logger.FromContext(ctx).Warn(LogMsgInputRejected, "reason", "term", "severity", string(severity))
				return false, RejectionOffensive
			}
		}
	}

	lowMatches := 0
	for _, term := range f.terms[SeverityLow] {
		if strings.Contains(lower, strings.ToLower(term)) {
			lowMatches++
		}
	}
	if lowMatches >= 3 {
		logger.FromContext(ctx).Warn(LogMsgInputRejected, "reason", "low_severity_accumulation", "matches", lowMatches)
		return false, RejectionOffensive
	}

	violenceCount := 0
	for _, word := range violenceIndicators {
		if strings.Contains(lower, word) {
			violenceCount++
		}
	}
	if violenceCount >= 2 {
		logger.FromContext(ctx).Warn(LogMsgInputRejected, "reason", "violence", "indicators", violenceCount)
		return false, RejectionViolent
	}

	for _, word := range outOfContextIndicators {
		if strings.Contains(lower, word) {
			logger.FromContext(ctx).Warn(LogMsgInputRejected, "reason", "out_of_context")
			return false, RejectionOutOfContext
		}
	}

	return true, ""
}

// CheckAIResponse screens generated text before it reaches the player.
// High severity matches replace the whole response; medium severity
// matches are redacted in place and flagged; low severity matches and
// graphic violence phrasing are softened silently.
func (f *Filter) CheckAIResponse(ctx context.Context, text string) (bool, string) {
	lower := strings.ToLower(text)

	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, term := range f.terms[SeverityHigh] {
		if strings.Contains(lower, strings.ToLower(term)) {
			logger.FromContext(ctx).Warn(LogMsgResponseRedacted, "severity", "high")
			return false, ReplacedResponse
		}
	}

	mediumFound := false
	for _, term := range f.terms[SeverityMedium] {
		if strings.Contains(lower, strings.ToLower(term)) {
			mediumFound = true
			text = replaceFold(text, term, RedactedContent)
		}
	}
	if mediumFound {
		logger.FromContext(ctx).Warn(LogMsgResponseRedacted, "severity", "medium")
		return false, text
	}

	for _, term := range f.terms[SeverityLow] {
		if strings.Contains(lower, strings.ToLower(term)) {
			text = replaceFold(text, term, SoftenedTerm)
		}
	}
	for _, indicator := range responseViolenceIndicators {
		if strings.Contains(lower, indicator) {
			text = replaceFold(text, indicator, CombatPlaceholder)
		}
	}

	return true, text
}

// FilterImagePrompt sanitizes an illustration prompt: strips metaprompt
// fragments, truncates, rejects prompts that match the blocked
// patterns or registered terms, and prefixes the house art style.
func (f *Filter) FilterImagePrompt(ctx context.Context, prompt string) (bool, string) {
	log := logger.FromContext(ctx)
	lower := strings.ToLower(prompt)

	for _, term := range metapromptTerms {
		if strings.Contains(lower, term) {
			prompt = replaceFold(prompt, term, "")
			log.Info(LogMsgMetapromptRemoved, "term", term)
		}
	}

	if truncated := truncateRunes(prompt, ImagePromptMaxLen); truncated != prompt {
		prompt = truncated
		log.Info(LogMsgPromptTruncated)
	}

	f.mu.RLock()
	blocked := slices.Concat(f.terms[SeverityHigh], f.terms[SeverityMedium])
	f.mu.RUnlock()

	for _, term := range blocked {
		if strings.Contains(lower, strings.ToLower(term)) {
			log.Warn(LogMsgImagePromptBlocked, "reason", "term")
			return false, SafeImageFallback
		}
	}
	for _, pattern := range problematicImagePatterns {
		if pattern.MatchString(lower) {
			log.Warn(LogMsgImagePromptBlocked, "reason", "pattern", "pattern", pattern.String())
			return false, SafeImageFallback
		}
	}

	return true, truncateRunes(SafeImagePromptStyle+prompt, ImagePromptMaxLen)
}

// truncateRunes cuts the string to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// WrapPrompt brackets a narration prompt with the safety instructions.
func (f *Filter) WrapPrompt(prompt string) string {
	return PromptSafetyPrefix + prompt + PromptSafetySuffix
}

// SafeRequest runs a generation function with the full safety pipeline:
// input check, prompt wrapping, then response screening. When the
// input is rejected the generator is never called and the rejection
// message comes back as the text.
func (f *Filter) SafeRequest(ctx context.Context, prompt string, generate func(context.Context, string) (string, error)) (string, error) {
	ok, rejection := f.CheckPlayerInput(ctx, prompt)
	if !ok {
		return rejection, nil
	}

	response, err := generate(ctx, f.WrapPrompt(prompt))
	if err != nil {
		return "", err
	}

	_, filtered := f.CheckAIResponse(ctx, response)
	return filtered, nil
}

// replaceFold replaces every case-insensitive occurrence of term.
func replaceFold(text, term, replacement string) string {
	if term == "" {
		return text
	}
	var b strings.Builder
	lower := strings.ToLower(text)
	lowerTerm := strings.ToLower(term)
	for {
		i := strings.Index(lower, lowerTerm)
		if i < 0 {
			b.WriteString(text)
			return b.String()
		}
		b.WriteString(text[:i])
		b.WriteString(replacement)
		text = text[i+len(term):]
		lower = lower[i+len(lowerTerm):]
	}
}
