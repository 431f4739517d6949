package discord

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/SMCNetwolf/LLMGame/internal/domain"
)

// Config holds the bot configuration
type Config struct {
	Token  string
	APIURL string
	APIKey string
	Prefix string
}

// Bot bridges Discord messages to the game API
type Bot struct {
	Session *discordgo.Session
	Client  *APIClient
	Prefix  string
}

// New creates a new bot instance
func New(cfg Config) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	bot := &Bot{
		Session: session,
		Client:  NewAPIClient(cfg.APIURL, cfg.APIKey),
		Prefix:  prefix,
	}

	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent
	session.AddHandler(bot.ready)
	session.AddHandler(bot.messageCreate)

	return bot, nil
}

// Start opens the Discord connection
func (b *Bot) Start() error {
	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	return nil
}

// Stop closes the Discord connection
func (b *Bot) Stop() error {
	return b.Session.Close()
}

// Run starts the bot and blocks until an interrupt signal
func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	slog.Info(LogMsgBotRunning, "prefix", b.Prefix)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info(LogMsgBotReady, "username", r.User.Username)
}

func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	content := strings.TrimSpace(m.Content)
	if !strings.HasPrefix(content, b.Prefix) {
		return
	}

	command := strings.TrimSpace(strings.TrimPrefix(content, b.Prefix))
	if command == "" {
		command = "ajuda"
	}

	slog.Info(LogMsgCommandReceived, "author", m.Author.Username, "command", command)

	var reply string
	if name, class, ok := parseCreate(command); ok {
		reply = b.handleCreate(m.Author, name, class)
	} else {
		reply = b.handleCommand(m.Author, command)
	}

	b.reply(s, m.ChannelID, reply)
}

// parseCreate recognizes "criar <classe> <nome...>"
func parseCreate(command string) (name, class string, ok bool) {
	fields := strings.Fields(command)
	if len(fields) == 0 || !strings.EqualFold(fields[0], "criar") {
		return "", "", false
	}
	if len(fields) < 3 {
		// An incomplete "criar" still routes here so the player gets
		// a usage hint instead of a freeform narrative.
		return "", "", true
	}
	return strings.Join(fields[2:], " "), strings.ToLower(fields[1]), true
}

func (b *Bot) handleCreate(author *discordgo.User, name, class string) string {
	if name == "" || class == "" {
		return fmt.Sprintf(MsgFmtCreateUsage, b.Prefix)
	}

	user, err := b.resolveUser(author)
	if err != nil {
		slog.Error(LogMsgCommandFailed, "error", err, "author", author.Username)
		return MsgCreateFailed
	}

	session, err := b.Client.CreateCharacter(user.ID, name, class)
	if err != nil {
		slog.Error(LogMsgCommandFailed, "error", err, "author", author.Username)
		return MsgCreateFailed
	}

	char := session.Character
	return fmt.Sprintf(MsgFmtCharacterCreated, char.Name, char.Class, session.State.CurrentLocation)
}

func (b *Bot) handleCommand(author *discordgo.User, command string) string {
	user, err := b.resolveUser(author)
	if err != nil {
		slog.Error(LogMsgCommandFailed, "error", err, "author", author.Username)
		return MsgCommandFailed
	}

	chars, err := b.Client.ListCharacters(user.ID)
	if err != nil {
		slog.Error(LogMsgCommandFailed, "error", err, "author", author.Username)
		return MsgCommandFailed
	}
	if len(chars) == 0 {
		return fmt.Sprintf(MsgNoCharacter, b.Prefix)
	}

	result, err := b.Client.SendCommand(chars[0].ID, command)
	if err != nil {
		slog.Error(LogMsgCommandFailed, "error", err, "author", author.Username)
		return MsgCommandFailed
	}

	return result.Narrative
}

// resolveUser finds the account for a Discord author, creating it on first contact
func (b *Bot) resolveUser(author *discordgo.User) (*domain.User, error) {
	user, err := b.Client.GetUserByExternalID(author.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	return b.Client.CreateUser(author.Username, author.ID)
}

func (b *Bot) reply(s *discordgo.Session, channelID, message string) {
	for _, chunk := range splitMessage(message, MaxMessageLength) {
		if _, err := s.ChannelMessageSend(channelID, chunk); err != nil {
			slog.Error(LogMsgReplyFailed, "error", err, "channel", channelID)
			return
		}
	}
}

// splitMessage breaks a long narrative on word boundaries under Discord's limit
func splitMessage(message string, limit int) []string {
	if len(message) <= limit {
		return []string{message}
	}

	var chunks []string
	for len(message) > limit {
		cut := strings.LastIndex(message[:limit], " ")
		if cut <= 0 {
			cut = limit
		}
		chunks = append(chunks, strings.TrimSpace(message[:cut]))
		message = strings.TrimSpace(message[cut:])
	}
	if message != "" {
		chunks = append(chunks, message)
	}
	return chunks
}
