package achievement

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainClientMint(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/transaction", r.URL.Path)

		var req chainRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "mint", req.Method)
		assert.Equal(t, testAddress, req.Args["to"])
		assert.Equal(t, "owner-key", req.From)

		json.NewEncoder(w).Encode(chainResponse{Status: "success", TxHash: "0xdeadbeef"})
	}))
	defer upstream.Close()

	client := NewChainClient(upstream.URL, "owner-key")
	txHash, err := client.Mint(testAddress)

	require.NoError(t, err)
	assert.Equal(t, "0xdeadbeef", txHash)
}

func TestChainClientMintUpstreamError(t *testing.T) {
	reason := "insufficient funds"
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chainResponse{Status: "error", Error: &reason})
	}))
	defer upstream.Close()

	client := NewChainClient(upstream.URL, "owner-key")
	_, err := client.Mint(testAddress)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient funds")
}

func TestChainClientMintBadStatusCode(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	client := NewChainClient(upstream.URL, "owner-key")
	_, err := client.Mint(testAddress)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestChainClientNotConfigured(t *testing.T) {
	client := NewChainClient("", "")
	_, err := client.Mint(testAddress)

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestChainClientRejectsInvalidAddress(t *testing.T) {
	called := false
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer upstream.Close()

	client := NewChainClient(upstream.URL, "owner-key")
	_, err := client.Mint("bogus")

	assert.ErrorIs(t, err, ErrInvalidAddress)
	assert.False(t, called, "invalid addresses never hit the upstream")
}

func TestClientMintAgainstRelay(t *testing.T) {
	minter := &fakeMinter{txHash: "0xfeed"}
	relay := httptest.NewServer(NewServer(minter).Handler())
	defer relay.Close()

	client := NewClient(relay.URL)

	t.Run("success", func(t *testing.T) {
		txHash, err := client.Mint(testAddress)
		require.NoError(t, err)
		assert.Equal(t, "0xfeed", txHash)
	})

	t.Run("relay rejects address", func(t *testing.T) {
		_, err := client.Mint("nope")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid address")
	})
}
