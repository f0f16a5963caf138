package achievement

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// Minter performs the actual mint against the token contract
type Minter interface {
	Mint(address string) (string, error)
}

// Server exposes the mint relay over HTTP. It validates the address format
// and forwards the request to the Minter; it never retries and holds no
// game state.
type Server struct {
	minter Minter
}

// mintRequest is the request body for POST /api/mint
type mintRequest struct {
	Address string `json:"address"`
}

// mintResponse is the response body for POST /api/mint
type mintResponse struct {
	Success bool   `json:"success"`
	TxHash  string `json:"txHash,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewServer creates a mint relay server
func NewServer(minter Minter) *Server {
	return &Server{minter: minter}
}

// Handler returns the HTTP handler for the relay
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/mint", s.handleMint)
	return mux
}

func (s *Server) handleMint(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, mintResponse{
			Success: false,
			Error:   "method not allowed",
		})
		return
	}

	var req mintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, mintResponse{
			Success: false,
			Error:   "malformed request body",
		})
		return
	}

	if !ValidAddress(req.Address) {
		writeJSON(w, http.StatusBadRequest, mintResponse{
			Success: false,
			Error:   "invalid address",
		})
		return
	}

	txHash, err := s.minter.Mint(req.Address)
	if err != nil {
		log.Printf("mint relay: %v", err)
		status := http.StatusBadGateway
		if errors.Is(err, ErrNotConfigured) {
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, mintResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, mintResponse{
		Success: true,
		TxHash:  txHash,
	})
}

func writeJSON(w http.ResponseWriter, status int, body mintResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("mint relay: failed to write response: %v", err)
	}
}
