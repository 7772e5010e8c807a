package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"log"
	"os"
	"strings"

	"pixel-avatar/internal/config"
	"pixel-avatar/internal/server"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// Generate host key if it doesn't exist
	if err := ensureHostKey(cfg.HostKeyPath); err != nil {
		log.Fatalf("Host key error: %v", err)
	}

	// Start SSH server (blocks)
	sshServer := server.NewSSHServer(cfg.Addr, cfg.HostKeyPath, cfg.PreviewSize)
	port := cfg.Addr[strings.LastIndex(cfg.Addr, ":")+1:]
	log.Printf("Starting avatar preview, try: ssh -p %s localhost hair=afro pose=karate", port)
	if err := sshServer.Start(); err != nil {
		log.Fatalf("SSH server error: %v", err)
	}
}

func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // key already exists
	}

	log.Println("Generating new host key...")
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	pemBlock := &pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: keyBytes,
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, pemBlock)
}
