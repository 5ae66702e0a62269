package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/frontend/text"
	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/command"
	"github.com/cory-johannsen/skirmish/internal/game/encounter"
	"github.com/cory-johannsen/skirmish/internal/game/roster"
)

const prompt = "> "

// Session is one interactive player driving encounters through a line-oriented
// terminal. It owns at most one live encounter at a time.
type Session struct {
	in       io.Reader
	out      io.Writer
	roster   *roster.Roster
	engine   *encounter.Engine
	commands *command.Registry
	active   *encounter.Registry
	renderer *text.Renderer
	logger   *zap.Logger

	// currentID keys the live encounter in active; empty before start.
	currentID string
	stopped   chan struct{}
	stopOnce  sync.Once
}

// NewSession wires a Session around the given input and output streams.
//
// Precondition: in, out, r, and engine must be non-nil.
func NewSession(in io.Reader, out io.Writer, r *roster.Roster, engine *encounter.Engine, renderer *text.Renderer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if renderer == nil {
		renderer = text.NewRenderer(false)
	}
	return &Session{
		in:       in,
		out:      out,
		roster:   r,
		engine:   engine,
		commands: command.DefaultRegistry(),
		active:   encounter.NewRegistry(),
		renderer: renderer,
		logger:   logger,
		stopped:  make(chan struct{}),
	}
}

// Start runs the session; it satisfies server.Service.
func (s *Session) Start() error { return s.Run() }

// Stop makes Run return before handling the next line. Safe to call from any
// goroutine.
func (s *Session) Stop() {
	s.stopOnce.Do(func() { close(s.stopped) })
}

// Run reads commands until quit or end of input.
//
// Postcondition: Returns nil on quit or EOF, or the first read/write error.
func (s *Session) Run() error {
	if err := s.println("type start to begin, or help for a list of commands"); err != nil {
		return err
	}
	scanner := bufio.NewScanner(s.in)
	for {
		if _, err := io.WriteString(s.out, prompt); err != nil {
			return err
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		select {
		case <-s.stopped:
			return nil
		default:
		}
		quit, err := s.Handle(scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// Handle executes one input line.
//
// Postcondition: quit is true iff the line resolved to the quit command.
func (s *Session) Handle(line string) (quit bool, err error) {
	parsed := command.Parse(line)
	if parsed.Command == "" {
		return false, nil
	}
	cmd, ok := s.commands.Resolve(parsed.Command)
	if !ok {
		return false, s.println(fmt.Sprintf("unknown command %q, type help for a list of commands", parsed.Command))
	}

	switch cmd.Handler {
	case command.HandlerAction:
		action, err := combat.ParseAction(cmd.Name)
		if err != nil {
			return false, fmt.Errorf("command %q: %w", cmd.Name, err)
		}
		enc := s.live()
		if enc == nil || !enc.CanAct() {
			return false, s.println(s.renderer.Result("", encounter.CommandResult{Rejected: true}))
		}
		res := s.engine.Submit(enc, action)
		return false, s.println(s.renderer.Result(enc.Player.Name, res))
	case command.HandlerStatus:
		return false, s.status(encounter.WhoPlayer)
	case command.HandlerEnemyStatus:
		return false, s.status(encounter.WhoEnemy)
	case command.HandlerHelp:
		return false, s.help(parsed.Args)
	case command.HandlerStart:
		return false, s.start()
	case command.HandlerQuit:
		s.finish()
		return true, s.println("bye")
	default:
		return false, fmt.Errorf("command %q has no handler", cmd.Name)
	}
}

// live returns the session's current encounter, or nil before the first start.
func (s *Session) live() *encounter.Encounter {
	if s.currentID == "" {
		return nil
	}
	enc, ok := s.active.Get(s.currentID)
	if !ok {
		return nil
	}
	return enc
}

func (s *Session) status(who encounter.Who) error {
	enc := s.live()
	if enc == nil || !enc.CanAct() {
		return s.println(s.renderer.Result("", encounter.CommandResult{Rejected: true}))
	}
	st, ok := encounter.Query(enc, who)
	return s.println(s.renderer.Status(who, st, ok))
}

// help lists every command, or describes the commands named in args.
func (s *Session) help(args []string) error {
	if len(args) == 0 {
		return s.println(s.renderer.Help(s.commands))
	}
	for _, name := range args {
		cmd, ok := s.commands.Resolve(strings.ToLower(name))
		if !ok {
			if err := s.println(fmt.Sprintf("unknown command %q", name)); err != nil {
				return err
			}
			continue
		}
		if err := s.println(s.renderer.HelpFor(cmd)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) start() error {
	player, enemies, err := s.roster.Spawn()
	if err != nil {
		return fmt.Errorf("spawning roster: %w", err)
	}
	enc, err := encounter.Start(player, enemies)
	if err != nil {
		return fmt.Errorf("starting encounter: %w", err)
	}
	s.finish()
	if err := s.active.Add(enc); err != nil {
		return fmt.Errorf("registering encounter: %w", err)
	}
	s.currentID = enc.ID
	s.logger.Info("encounter started",
		zap.String("encounter", enc.ID),
		zap.Int("enemies", len(enc.Roster)),
		zap.Int("active_encounters", s.active.Len()),
	)
	return s.println(s.renderer.Welcome(enc))
}

func (s *Session) finish() {
	if s.currentID == "" {
		return
	}
	s.active.Remove(s.currentID)
	s.currentID = ""
}

func (s *Session) println(msg string) error {
	if msg == "" {
		return nil
	}
	_, err := fmt.Fprintln(s.out, msg)
	return err
}
