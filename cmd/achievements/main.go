package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"basedefender/achievement"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	rpcURL := flag.String("rpc-url", "", "token contract RPC URL (or set RPC_URL env var)")
	ownerKey := flag.String("owner-key", "", "contract owner key (or set OWNER_KEY env var)")
	flag.Parse()

	url := *rpcURL
	if url == "" {
		url = os.Getenv("RPC_URL")
	}
	key := *ownerKey
	if key == "" {
		key = os.Getenv("OWNER_KEY")
	}

	if url == "" || key == "" {
		log.Println("warning: RPC_URL or OWNER_KEY not set, mint requests will fail")
	}

	server := achievement.NewServer(achievement.NewChainClient(url, key))

	log.Printf("achievement relay listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, server.Handler()))
}
