package main

import (
	"bufio"
	"chat-room/api"
	"chat-room/internal"
	"chat-room/services"
	"chat-room/storage"
	"chat-room/transport"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"golang.org/x/sync/errgroup"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run wires the session service, resumes a stored session if any,
// and drives it from stdin until /quit or a termination signal.
func run() (int, error) {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Session store (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Debug("Closing BadgerDB...")
		_ = db.Close()
	}()
	store := storage.NewSessionStore(db, log, config.Profile)

	// 3. Room service collaborators
	roomClient := api.NewRoomClient(config.ServerURL, config.RequestTimeout, log)
	connections, err := transport.NewConnectionManager(config.ServerURL, log,
		transport.WithDialAttempts(uint(config.DialAttempts)),
		transport.WithHandshakeTimeout(config.HandshakeTimeout),
		transport.WithWriteTimeout(config.WriteTimeout),
		transport.WithMaxFrameBytes(int64(config.MaxFrameBytes)),
	)
	if err != nil {
		return exitConfig, err
	}
	service := services.NewSessionService(roomClient, connections, store, log,
		services.WithSelfEchoSuppression(config.SuppressSelfEcho))
	// The connection is closed on exit but the stored session is kept for the next start.
	defer func() { _ = connections.Close() }()

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shell := newShell(service, os.Stdout)
	shell.banner(config.ServerURL)

	// 5. Resume whatever the previous run left behind
	if resumed, err := service.Resume(ctx); err != nil {
		shell.failure("resume", err)
	} else if !resumed {
		shell.hint()
	}

	// Scanning stdin cannot be interrupted, so it lives outside the group.
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error { return shell.render(gCtx) })
	g.Go(func() error { return shell.interact(gCtx, lines) })

	if err = g.Wait(); err != nil && err != errQuit {
		return exitRuntime, err
	}
	log.Info("Client stopped")
	return exitOK, nil
}
