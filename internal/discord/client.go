package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/SMCNetwolf/LLMGame/internal/domain"
)

// APIClient handles communication with the game API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
		APIKey: apiKey,
	}
}

// doRequest performs an HTTP request with retry logic
func (c *APIClient) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	var err error

	if body != nil {
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	reqURL := fmt.Sprintf("%s%s", c.BaseURL, path)

	// Retry configuration
	maxRetries := 3
	retryDelay := 500 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := retryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			time.Sleep(delay)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
		}

		req, err := http.NewRequest(method, reqURL, bytes.NewBuffer(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		// Success or non-retryable error
		if resp.StatusCode < 500 {
			return resp, nil
		}

		// Server error - retry
		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

func decodeAPIError(resp *http.Response) error {
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("API error: %s", errResp.Error)
	}
	return fmt.Errorf("API returned status: %d", resp.StatusCode)
}

// GetUserByExternalID looks a user up by their Discord id
func (c *APIClient) GetUserByExternalID(externalID string) (*domain.User, error) {
	resp, err := c.doRequest(http.MethodGet, "/api/v1/users?external_id="+url.QueryEscape(externalID), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrUserNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var user domain.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &user, nil
}

// CreateUser registers a player account tied to a Discord id
func (c *APIClient) CreateUser(username, externalID string) (*domain.User, error) {
	req := map[string]string{
		"username":    username,
		"external_id": externalID,
	}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/users", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, decodeAPIError(resp)
	}

	var user domain.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &user, nil
}

// ListCharacters lists a user's characters
func (c *APIClient) ListCharacters(userID int) ([]domain.Character, error) {
	resp, err := c.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/users/%d/characters", userID), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var chars []domain.Character
	if err := json.NewDecoder(resp.Body).Decode(&chars); err != nil {
		return nil, fmt.Errorf("failed to decode characters: %w", err)
	}
	return chars, nil
}

// CharacterSession is a character together with its session document
type CharacterSession struct {
	Character *domain.Character `json:"character"`
	State     *domain.GameState `json:"state"`
}

// CreateCharacter rolls a new character for the user
func (c *APIClient) CreateCharacter(userID int, name, class string) (*CharacterSession, error) {
	req := map[string]interface{}{
		"user_id": userID,
		"name":    name,
		"class":   class,
	}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/characters", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, decodeAPIError(resp)
	}

	var session CharacterSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("failed to decode character: %w", err)
	}
	return &session, nil
}

// CommandResult is the narrative outcome of one command
type CommandResult struct {
	Narrative   string `json:"narrative"`
	NewLocation string `json:"new_location,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// SendCommand sends one player command to a character's session
func (c *APIClient) SendCommand(characterID int, command string) (*CommandResult, error) {
	req := map[string]string{
		"command": command,
	}

	resp, err := c.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/characters/%d/command", characterID), req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var result CommandResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}
	return &result, nil
}
