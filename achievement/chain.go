package achievement

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotConfigured is returned when the chain client is missing its
// upstream URL or owner key
var ErrNotConfigured = errors.New("chain client not configured")

// ChainClient relays mint calls to the token-contract RPC upstream. Only
// the contract owner may mint, so the owner key travels with each request.
type ChainClient struct {
	baseURL    string
	ownerKey   string
	httpClient *http.Client
}

// chainRequest is the request body for the contract RPC upstream
type chainRequest struct {
	Method string         `json:"method"`
	Args   map[string]any `json:"args"`
	From   string         `json:"from"`
}

// chainResponse is the response from the contract RPC upstream
type chainResponse struct {
	Status string  `json:"status"`
	TxHash string  `json:"txHash"`
	Error  *string `json:"errorMessage,omitempty"`
}

// NewChainClient creates a client for the given contract RPC upstream
func NewChainClient(rpcURL, ownerKey string) *ChainClient {
	return &ChainClient{
		baseURL:  rpcURL,
		ownerKey: ownerKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Mint requests one achievement token for the address and returns the
// transaction hash. The token is non-transferable, so a mint is the only
// contract call this client ever makes.
func (c *ChainClient) Mint(address string) (string, error) {
	if c.baseURL == "" || c.ownerKey == "" {
		return "", ErrNotConfigured
	}
	if !ValidAddress(address) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}

	reqBody := chainRequest{
		Method: "mint",
		Args:   map[string]any{"to": address},
		From:   c.ownerKey,
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/transaction", c.baseURL)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chain RPC error (status %d): %s", resp.StatusCode, string(body))
	}

	var chainResp chainResponse
	if err := json.Unmarshal(body, &chainResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if chainResp.Status != "success" {
		errMsg := "unknown error"
		if chainResp.Error != nil {
			errMsg = *chainResp.Error
		}
		return "", fmt.Errorf("mint failed: %s", errMsg)
	}

	return chainResp.TxHash, nil
}
