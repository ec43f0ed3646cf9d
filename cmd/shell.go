package main

import (
	"chat-room/domain"
	"chat-room/services"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/gookit/color"
)

var errQuit = fmt.Errorf("quit")

type command struct {
	name string
	args []string
}

// parseCommand splits "/join r1 pw alice" into a command.
// Anything that does not start with "/" is a message to send.
func parseCommand(line string) (command, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "/") {
		return command{}, false
	}
	fields := strings.Fields(trimmed[1:])
	if len(fields) == 0 {
		return command{}, false
	}
	return command{name: strings.ToLower(fields[0]), args: fields[1:]}, true
}

// shell renders the session view and turns input lines into service calls.
type shell struct {
	service services.ISessionService
	out     io.Writer

	mu      sync.Mutex
	printed int
	last    domain.SessionView

	outMu sync.Mutex
}

func newShell(service services.ISessionService, out io.Writer) *shell {
	return &shell{service: service, out: out}
}

func (s *shell) interact(ctx context.Context, lines <-chan string) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return errQuit
			}
			if err := s.handle(ctx, line); err != nil {
				return err
			}
		}
	}
}

func (s *shell) handle(ctx context.Context, line string) error {
	cmd, ok := parseCommand(line)
	if !ok {
		if strings.TrimSpace(line) == "" {
			return nil
		}
		if err := s.service.SendMessage(line); err != nil {
			s.failure("send", err)
		}
		return nil
	}

	switch cmd.name {
	case "create":
		if len(cmd.args) != 2 {
			s.usage("/create <room> <password>")
			return nil
		}
		if err := s.service.CreateRoom(ctx, cmd.args[0], cmd.args[1]); err != nil {
			s.failure("create", err)
			return nil
		}
		s.println(color.Green.Sprintf("Room %s created, use /join to enter it", cmd.args[0]))
	case "join":
		if len(cmd.args) != 3 {
			s.usage("/join <room> <password> <nickname>")
			return nil
		}
		if err := s.service.JoinRoom(ctx, cmd.args[0], cmd.args[1], cmd.args[2]); err != nil {
			s.failure("join", err)
		}
	case "leave":
		_ = s.service.LeaveRoom()
	case "reconnect":
		if err := s.service.Reconnect(ctx); err != nil {
			s.failure("reconnect", err)
		}
	case "quit", "exit":
		return errQuit
	default:
		s.hint()
	}
	return nil
}

// render prints new transcript lines and state changes whenever the service signals.
func (s *shell) render(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.service.Updates():
			s.refresh(s.service.View())
		}
	}
}

func (s *shell) refresh(view domain.SessionView) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if view.RoomID != s.last.RoomID || len(view.Transcript) < s.printed {
		s.printed = 0
	}
	if view.State != s.last.State || view.RoomID != s.last.RoomID {
		s.printState(view)
	}
	for _, message := range view.Transcript[s.printed:] {
		s.printMessage(view.Nickname, message)
	}
	s.printed = len(view.Transcript)
	s.last = view
}

func (s *shell) printState(view domain.SessionView) {
	switch view.State {
	case domain.Idle:
		s.println(color.Yellow.Sprint("-- not in a room"))
	case domain.Joining:
		s.println(color.Yellow.Sprintf("-- joining %s as %s...", view.RoomID, view.Nickname))
	case domain.Connected:
		s.println(color.Green.Sprintf("-- connected to %s as %s", view.RoomID, view.Nickname))
	case domain.Disconnected:
		s.println(color.Red.Sprintf("-- disconnected from %s, /reconnect or /leave", view.RoomID))
	}
}

func (s *shell) printMessage(nickname string, message domain.Message) {
	switch {
	case message.Origin == domain.OriginHistory:
		s.println(color.Gray.Sprint(message.Line()))
	case message.SenderNickname == nickname:
		s.println(color.Cyan.Sprint(message.Line()))
	default:
		s.println(message.Line())
	}
}

func (s *shell) banner(serverURL string) {
	s.println(color.Magenta.Sprintf("Chat room client on %s", serverURL))
}

func (s *shell) hint() {
	s.println("Commands: /create <room> <password>, /join <room> <password> <nickname>, /leave, /reconnect, /quit")
}

func (s *shell) usage(text string) {
	s.println(color.Yellow.Sprintf("usage: %s", text))
}

func (s *shell) failure(action string, err error) {
	s.println(color.Red.Sprintf("%s failed: %v", action, err))
}

func (s *shell) println(text string) {
	s.outMu.Lock()
	defer s.outMu.Unlock()
	_, _ = fmt.Fprintln(s.out, text)
}
