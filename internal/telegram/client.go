package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// APIError is a non-ok response from the Bot API.
type APIError struct {
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram api error %d: %s", e.Code, e.Description)
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	ErrorCode   int             `json:"error_code"`
	Description string          `json:"description"`
}

// call posts params as JSON to the named Bot API method and decodes
// the result envelope into out (when out is non-nil).
func (c *implClient) call(ctx context.Context, method string, params interface{}, out interface{}) error {
	body, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", method, err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", method, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", method, err)
	}

	var envelope apiResponse
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", method, err)
	}
	if !envelope.OK {
		return &APIError{Code: envelope.ErrorCode, Description: envelope.Description}
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return fmt.Errorf("failed to decode %s result: %w", method, err)
		}
	}
	return nil
}

// isParseError reports whether the API rejected the message for its
// Markdown entities, in which case a plain-text retry will go through.
func isParseError(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && strings.Contains(strings.ToLower(apiErr.Description), "can't parse entities")
}

// Send delivers a Markdown message, retrying as plain text when the
// model output contains markup Telegram refuses to parse.
func (c *implClient) Send(ctx context.Context, chatID int64, text string) (int, error) {
	params := map[string]interface{}{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "Markdown",
	}

	var msg Message
	err := c.call(ctx, "sendMessage", params, &msg)
	if isParseError(err) {
		c.logger.Debug(ctx, "Markdown rejected for chat %d, retrying as plain text", chatID)
		delete(params, "parse_mode")
		err = c.call(ctx, "sendMessage", params, &msg)
	}
	if err != nil {
		return 0, err
	}
	return int(msg.MessageID), nil
}

// Edit replaces the text of a previously sent message.
func (c *implClient) Edit(ctx context.Context, chatID int64, messageID int, text string) error {
	params := map[string]interface{}{
		"chat_id":    chatID,
		"message_id": messageID,
		"text":       text,
		"parse_mode": "Markdown",
	}

	err := c.call(ctx, "editMessageText", params, nil)
	if isParseError(err) {
		delete(params, "parse_mode")
		err = c.call(ctx, "editMessageText", params, nil)
	}
	return err
}

// Delete removes a previously sent message.
func (c *implClient) Delete(ctx context.Context, chatID int64, messageID int) error {
	params := map[string]interface{}{
		"chat_id":    chatID,
		"message_id": messageID,
	}
	return c.call(ctx, "deleteMessage", params, nil)
}

// GetUpdates long-polls for updates after offset.
func (c *implClient) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]Update, error) {
	params := map[string]interface{}{
		"offset":          offset,
		"timeout":         int(timeout.Seconds()),
		"allowed_updates": []string{"message"},
	}

	var updates []Update
	if err := c.call(ctx, "getUpdates", params, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}
