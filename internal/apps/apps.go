// Package apps holds the interactive programs shipped with the raz command.
// Each program talks to the user only through a stream.Console, so tests
// drive them with in-memory input and output.
package apps

import (
	"context"
	"errors"
	"fmt"

	"github.com/Neumenon/raz/internal/config"
	"github.com/Neumenon/raz/internal/logging"
	"github.com/Neumenon/raz/raz"
	"github.com/Neumenon/raz/stream"
)

// ErrUnknownProgram is returned by Run for a name with no registered program.
var ErrUnknownProgram = errors.New("unknown program")

// Env is what a program runs against.
type Env struct {
	Console  *stream.Console
	Random   *raz.Random
	Logger   logging.Logger
	Charset  string
	GuessMax uint32
}

// NewEnv builds an Env over console using the settings in cfg.
func NewEnv(console *stream.Console, cfg *config.Config, logger logging.Logger) *Env {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Env{
		Console:  console,
		Random:   raz.NewRandom(cfg.Seed),
		Logger:   logger,
		Charset:  cfg.Charset,
		GuessMax: cfg.GuessMax,
	}
}

// Program is one interactive program.
type Program struct {
	Name    string
	Summary string
	Run     func(ctx context.Context, env *Env) error
}

var programs = func() *raz.Dict[string, Program] {
	d := raz.NewDict[string, Program]()
	for _, p := range []Program{
		{Name: "calc", Summary: "add, subtract, multiply and divide two numbers", Run: Calc},
		{Name: "guess", Summary: "guess the secret number", Run: Guess},
		{Name: "pswd", Summary: "generate a random password", Run: Pswd},
		{Name: "todo", Summary: "keep a list of tasks", Run: Todo},
		{Name: "greet", Summary: "a short questionnaire", Run: Greet},
	} {
		d.Insert(p.Name, p)
	}
	return d
}()

// Lookup returns the program registered under name.
func Lookup(name string) (Program, bool) {
	return programs.Get(name).Get()
}

// List returns the registered programs in registration order.
func List() []Program {
	out := make([]Program, 0, programs.Len())
	for _, p := range programs.All() {
		out = append(out, p)
	}
	return out
}

// Run looks up name and runs it against env.
func Run(ctx context.Context, name string, env *Env) error {
	p, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownProgram, name)
	}
	if err := p.Run(ctx, env); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
