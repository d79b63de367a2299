package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/jobpilot/internal/client/services"
	"github.com/dmitrijs2005/jobpilot/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_RejectsRelativeURL(t *testing.T) {
	cfg := testConfig()
	cfg.APIURL = "localhost/api"

	_, err := NewApp(cfg, logging.Discard())
	require.Error(t, err)
}

func TestNewApp_UsesConfiguredUser(t *testing.T) {
	cfg := testConfig()
	cfg.UserID = 5
	cfg.Locale = "en"

	app, err := NewApp(cfg, logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, int64(5), app.currentUser())
	assert.Equal(t, "en", app.fmt.Locale())
}

func TestSetMode_LogsOnlyOnChange(t *testing.T) {
	var buf bytes.Buffer
	app, _ := newTestApp(t, newFakeAPI(), "")
	app.log = logging.New(&buf, "info", "text")
	ctx := context.Background()

	app.setMode(ctx, ModeOnline)
	assert.Equal(t, ModeOnline, app.Mode())
	assert.Contains(t, buf.String(), "mode=online")

	buf.Reset()
	app.setMode(ctx, ModeOnline)
	assert.Empty(t, buf.String())

	app.setMode(ctx, ModeOffline)
	assert.Equal(t, ModeOffline, app.Mode())
	assert.Contains(t, buf.String(), "mode=offline")
}

func TestGetStatus(t *testing.T) {
	app, _ := newTestApp(t, newFakeAPI(), "")
	assert.Equal(t, "", app.getStatus())

	app.setMode(context.Background(), ModeOffline)
	assert.Equal(t, "(offline)", app.getStatus())

	app.selectUser(3)
	assert.Equal(t, "(user#3 offline)", app.getStatus())
}

func TestStartOnlineStatusWatcher(t *testing.T) {
	api := newFakeAPI()
	app, _ := newTestApp(t, api, "")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.StartOnlineStatusWatcher(ctx, 10*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return app.Mode() == ModeOnline }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestStartOnlineStatusWatcher_GoesOffline(t *testing.T) {
	api := newFakeAPI()
	api.pingErr = errors.New("down")
	app, _ := newTestApp(t, api, "")
	app.setMode(context.Background(), ModeOnline)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go app.StartOnlineStatusWatcher(ctx, time.Hour)

	require.Eventually(t, func() bool { return app.Mode() == ModeOffline }, time.Second, 5*time.Millisecond)
}

func TestStartOnlineStatusWatcher_Disabled(t *testing.T) {
	app, _ := newTestApp(t, newFakeAPI(), "")
	app.StartOnlineStatusWatcher(context.Background(), 0)
	assert.Equal(t, ModeDisabled, app.Mode())
}

func TestRun_OneShot(t *testing.T) {
	app, out := newTestApp(t, newFakeAPI(), "")

	require.NoError(t, app.Run(context.Background(), []string{"ping"}))
	assert.Equal(t, "Backend is online\n", out.String())
}

func TestRun_OneShotUnknownCommand(t *testing.T) {
	app, _ := newTestApp(t, newFakeAPI(), "")
	err := app.Run(context.Background(), []string{"launch"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "launch"`)
}

func TestRun_REPL(t *testing.T) {
	captureOutput(t)
	app, out := newTestApp(t, newFakeAPI(), "use 1\nresumes list\nexit\n")
	app.config.OnlineCheckInterval = time.Hour

	require.NoError(t, app.Run(context.Background(), nil))

	s := out.String()
	assert.True(t, strings.HasPrefix(s, "Welcome to jobpilot CLI"))
	assert.Contains(t, s, "#1 Иван Иванов <ivan@example.com>")
	assert.Contains(t, s, "#2 Иванов_Иван_Fullstack.pdf")
	assert.Equal(t, int64(1), app.currentUser())
}

func TestRequireUser(t *testing.T) {
	app, _ := newTestApp(t, newFakeAPI(), "")
	_, err := app.requireUser()
	require.ErrorIs(t, err, services.ErrNoUser)

	app.selectUser(1)
	id, err := app.requireUser()
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestUsage_ListsCommands(t *testing.T) {
	app, _ := newTestApp(t, newFakeAPI(), "")
	u := app.usage()
	for _, name := range []string{"user", "use", "resumes", "jobs", "notify", "webhook", "overview", "ping", "help", "exit"} {
		assert.Contains(t, u, name)
	}
	assert.True(t, app.hasCommand("resume"))
	assert.False(t, app.hasCommand("launch"))
}
