package achievement

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client calls the mint relay endpoint. The game uses it for the victory
// hook; failures are reported to the caller and never retried here.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given relay URL
func NewClient(relayURL string) *Client {
	return &Client{
		baseURL: relayURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Mint asks the relay to mint an achievement token for the address and
// returns the transaction hash
func (c *Client) Mint(address string) (string, error) {
	jsonData, err := json.Marshal(mintRequest{Address: address})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/mint", c.baseURL)
	resp, err := c.httpClient.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var mintResp mintResponse
	if err := json.Unmarshal(body, &mintResp); err != nil {
		return "", fmt.Errorf("failed to parse response (status %d): %w", resp.StatusCode, err)
	}

	if !mintResp.Success {
		errMsg := mintResp.Error
		if errMsg == "" {
			errMsg = fmt.Sprintf("relay returned status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("mint failed: %s", errMsg)
	}

	return mintResp.TxHash, nil
}
