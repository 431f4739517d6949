package ai

import "strings"

// Voice selects the narration voice for speech synthesis.
type Voice string

const (
	VoiceAlloy   Voice = "alloy"
	VoiceEcho    Voice = "echo"
	VoiceFable   Voice = "fable"
	VoiceNova    Voice = "nova"
	VoiceOnyx    Voice = "onyx"
	VoiceShimmer Voice = "shimmer"
)

// VoiceForClass maps a character class display name to its narration
// voice: magical classes get nova, dexterous classes echo, martial
// classes shimmer, everyone else onyx.
func VoiceForClass(className string) Voice {
	switch strings.ToLower(className) {
	case "mago", "feiticeiro", "bardo":
		return VoiceNova
	case "ladino", "arqueiro", "ranger", "caçador":
		return VoiceEcho
	case "guerreiro", "bárbaro", "paladino":
		return VoiceShimmer
	default:
		return VoiceOnyx
	}
}
