package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobpilot/internal/client/client"
	"github.com/dmitrijs2005/jobpilot/internal/client/config"
	"github.com/dmitrijs2005/jobpilot/internal/client/services"
	"github.com/dmitrijs2005/jobpilot/internal/client/source"
	"github.com/dmitrijs2005/jobpilot/internal/format"
	"github.com/dmitrijs2005/jobpilot/internal/logging"
)

type Mode string

const (
	ModeOffline  Mode = "offline"
	ModeOnline   Mode = "online"
	ModeDisabled Mode = "disabled"
)

const pingTimeout = 3 * time.Second

type App struct {
	config  *config.Config
	client  client.Client
	users   services.UserService
	board   *services.ResumeBoard
	sources source.Opener
	fmt     *format.Formatter
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer

	mu     sync.Mutex
	userID int64
	mode   Mode
}

// NewApp builds the CLI against the backend named in c.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	apiClient, err := client.New(c.APIURL, client.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("init api client: %w", err)
	}
	return newApp(c, apiClient, source.NewResolver(c.S3()), os.Stdin, os.Stdout, log), nil
}

func newApp(c *config.Config, api client.Client, sources source.Opener, in io.Reader, out io.Writer, log logging.Logger) *App {
	return &App{
		config:  c,
		client:  api,
		users:   services.NewUserService(api),
		board:   services.NewResumeBoard(api, services.WithBoardLogger(log)),
		sources: sources,
		fmt:     format.New(c.Locale),
		log:     log,
		reader:  bufio.NewReader(in),
		out:     out,
		userID:  c.UserID,
	}
}

// Run executes args as a single command, or starts the REPL when args is
// empty.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return a.execute(ctx, args)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Welcome to jobpilot CLI (type 'help' for commands)")
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(ctx, "switched mode", "mode", string(mode))
	}
}

func (a *App) currentUser() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.userID
}

func (a *App) selectUser(id int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.userID = id
}

func (a *App) requireUser() (int64, error) {
	id := a.currentUser()
	if id == 0 {
		return 0, fmt.Errorf("%w: run 'use <id>' or 'user create'", services.ErrNoUser)
	}
	return id, nil
}

// loadBoard fills the resume board for the current user. Unless force is
// set, a board already holding that user's resumes is left alone.
func (a *App) loadBoard(ctx context.Context, force bool) error {
	id, err := a.requireUser()
	if err != nil {
		return err
	}
	if !force && a.board.UserID() == id {
		return nil
	}
	return a.board.Load(ctx, id)
}

func (a *App) getStatus() string {
	s := ""
	if id := a.currentUser(); id != 0 {
		s = fmt.Sprintf("user#%d ", id)
	}
	if m := a.Mode(); m != "" {
		s += string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) checkOnline(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.users.Ping(pctx)
	cancel()

	if err != nil {
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}

// StartOnlineStatusWatcher probes the backend immediately and then every
// interval, switching between online and offline mode. It returns when ctx
// is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		a.setMode(ctx, ModeDisabled)
		return
	}

	a.checkOnline(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
