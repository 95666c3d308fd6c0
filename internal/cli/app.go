package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/pwkeeper/internal/cryptox"
	"github.com/dmitrijs2005/pwkeeper/internal/logging"
	"github.com/dmitrijs2005/pwkeeper/internal/services"
)

// credentialService is the subset of services.CredentialService the CLI uses.
type credentialService interface {
	Register(ctx context.Context, identifier string, password []byte) error
	Authenticate(ctx context.Context, identifier string, password []byte) (bool, error)
	Info(ctx context.Context, identifier string) (*services.CredentialInfo, error)
	List(ctx context.Context) ([]string, error)
}

// hasher is what the bench and demo commands need from cryptox.Hasher.
type hasher interface {
	cryptox.PasswordHasher
	Measure(iterations int) (time.Duration, error)
	Policy() cryptox.Policy
}

type App struct {
	service     credentialService
	hasher      hasher
	logger      logging.Logger
	benchTarget time.Duration
	current     string
	reader      *bufio.Reader
	out         io.Writer
}

// NewApp builds an App reading commands from stdin and writing to stdout.
func NewApp(svc credentialService, h hasher, logger logging.Logger, benchTarget time.Duration) *App {
	return &App{
		service:     svc,
		hasher:      h,
		logger:      logger,
		benchTarget: benchTarget,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to pwkeeper (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

// getStatus renders the identifier of the last successful login.
func (a *App) getStatus() string {
	if a.current == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.current)
}

// identifierArg takes the identifier from args or prompts for it.
func (a *App) identifierArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return GetSimpleText(a.reader, "Enter identifier", a.out)
}
