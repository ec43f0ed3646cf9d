package e2e

import (
	"chat-room/api"
	"chat-room/services"
	"chat-room/storage"
	"chat-room/transport"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

type BaseSessionSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSessionSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

// Client is one chat user: a full session stack with its own store.
type Client struct {
	Service     *services.SessionService
	Connections *transport.ConnectionManager
	Store       *storage.SessionStore
	db          *badger.DB
}

// NewClient builds a session stack against serverURL, storing under dir.
// The database is closed when the test ends.
func (s *BaseSessionSuite) NewClient(serverURL, dir string) *Client {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = db.Close() })

	return s.newClientOn(serverURL, db)
}

// Restart simulates a reload: a new stack over the same store.
func (s *BaseSessionSuite) Restart(serverURL string, previous *Client) *Client {
	_ = previous.Connections.Close()
	return s.newClientOn(serverURL, previous.db)
}

func (s *BaseSessionSuite) newClientOn(serverURL string, db *badger.DB) *Client {
	log := slog.Default()
	store := storage.NewSessionStore(db, log, storage.DefaultProfile)
	connections, err := transport.NewConnectionManager(serverURL, log,
		transport.WithDialAttempts(s.Config.DialAttempts),
		transport.WithWriteTimeout(5*time.Second))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = connections.Close() })

	service := services.NewSessionService(api.NewRoomClient(serverURL, 5*time.Second, log), connections, store, log)
	return &Client{Service: service, Connections: connections, Store: store, db: db}
}

// Step prints a header so the e2e log reads as a scenario.
func (s *BaseSessionSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// EventuallyLines waits until the client's transcript renders as expected.
func (s *BaseSessionSuite) EventuallyLines(client *Client, expected ...string) {
	s.Require().Eventually(func() bool {
		return slices.Equal(client.Service.View().Lines(), expected)
	}, 3*time.Second, 10*time.Millisecond, "transcript never became %v, last was %v", expected, client.Service.View().Lines())
}
