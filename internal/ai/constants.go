package ai

import "time"

// Default generation parameters
const (
	DefaultBaseURL     = "https://api.openai.com/v1"
	DefaultTextModel   = "gpt-3.5-turbo"
	DefaultImageModel  = "dall-e-2"
	DefaultSpeechModel = "tts-1"
	DefaultMaxTokens   = 500
	DefaultTemperature = 0.7
	DefaultImageSize   = "1024x1024"
	DefaultTimeout     = 60 * time.Second
)

// DefaultSystemMessage is used when a request carries no system message.
const DefaultSystemMessage = "Você é um mestre de RPG de fantasia avançado. Forneça respostas imersivas e detalhadas em português que enriqueçam a experiência do jogador. Use linguagem rica e descritiva para mundos de fantasia."

// ImageStyleSuffix is appended to every image prompt.
const ImageStyleSuffix = " Fantasy style, detailed, atmospheric lighting, high quality."

// FallbackNarrative keeps the player in character when the provider is
// unreachable.
const FallbackNarrative = "A magia antiga que alimenta este reino parece estar temporariamente enfraquecida. (Erro ao comunicar com o serviço de IA)"

// PlaceholderImageURL is served when image generation fails.
const PlaceholderImageURL = "/static/placeholder.svg"

// Cache sizing
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 15 * time.Minute
)

// ==================== Error Messages ====================

const (
	ErrMsgMissingAPIKey   = "api key not provided"
	ErrMsgEmptyPrompt     = "empty prompt"
	ErrMsgEmptyCompletion = "provider returned no choices"
	ErrMsgEmptyImage      = "provider returned no image"
)

// ==================== Log Messages ====================

const (
	LogMsgNarrativeGenerated = "Narrative generated"
	LogMsgImageGenerated     = "Image generated"
	LogMsgSpeechGenerated    = "Speech generated"
	LogMsgCacheHit           = "Generation cache hit"
	LogMsgProviderFailed     = "Provider request failed"
)
