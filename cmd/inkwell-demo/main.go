package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iw2rmb/inkwell"
	"github.com/iw2rmb/inkwell/config"
	"github.com/iw2rmb/inkwell/input"
	"github.com/iw2rmb/inkwell/tui"
	"github.com/iw2rmb/inkwell/widget"
)

// clipboard is a process-local clipboard; terminal paste arrives as
// bracketed paste instead.
type clipboard struct {
	mu   sync.Mutex
	text string
}

func (c *clipboard) ReadText() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, nil
}

func (c *clipboard) WriteText(s string) error {
	c.mu.Lock()
	c.text = s
	c.mu.Unlock()
	return nil
}

type model struct {
	form tui.Model
	last widget.TextChanged
	n    int
}

func newModel(cfg *config.Config) (model, error) {
	clip := &clipboard{}
	mk := func(id uint64, text string, edit func(*widget.Config)) (*widget.Widget, error) {
		wc := cfg.WidgetConfig(id, input.Point{})
		wc.Editor.Clipboard = clip
		wc.Paste = clip.ReadText
		edit(&wc)
		return widget.New(wc, text)
	}

	name, err := mk(1, "", func(wc *widget.Config) {
		wc.Surface.Size.Y = 1
		wc.Editor.MaxLines = 1
		wc.Password = false
		if wc.Placeholder == "" {
			wc.Placeholder = "Your name"
		}
	})
	if err != nil {
		return model{}, err
	}
	pass, err := mk(2, "", func(wc *widget.Config) {
		wc.Surface.Size.Y = 1
		wc.Editor.MaxLines = 1
		wc.Password = true
		wc.Placeholder = "Password"
	})
	if err != nil {
		return model{}, err
	}
	notes, err := mk(3, strings.Join([]string{
		"Notes take several lines.",
		"Click, drag, double or triple click to select; ctrl+z undoes.",
		"Tab moves between fields and ctrl+q quits.",
	}, "\n"), func(wc *widget.Config) {
		wc.Password = false
		wc.Placeholder = ""
		if wc.Surface.Size.Y < 4 {
			wc.Surface.Size.Y = 4
		}
		wc.Editor.ScrollEnabled = true
	})
	if err != nil {
		return model{}, err
	}

	form := tui.New(
		tui.Field{Label: "Name", Widget: name},
		tui.Field{Label: "Password", Widget: pass},
		tui.Field{Label: "Notes", Widget: notes},
	)
	return model{form: form}, nil
}

func (m model) Init() tea.Cmd { return m.form.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ev, ok := msg.(tui.ChangedMsg); ok {
		m.last = widget.TextChanged(ev)
		m.n++
		return m, nil
	}
	next, cmd := m.form.Update(msg)
	m.form = next.(tui.Model)
	return m, cmd
}

func (m model) View() string {
	status := fmt.Sprintf("inkwell %s | changes: %d", inkwell.VersionTag(), m.n)
	if m.n > 0 {
		status += fmt.Sprintf(" | field %d: %d bytes", m.last.ID, len(m.last.Text))
	}
	return m.form.View() + "\n\n" + status
}

func setupLogging(cfg *config.Config) (func(), error) {
	level, err := zerolog.ParseLevel(cfg.Log.LevelOrDefault())
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(level)

	path := cfg.Log.File
	if path == "" {
		path = os.DevNull
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { _ = f.Close() }, nil
}

func run() error {
	configPath := flag.String("config", "", "path to a TOML config file")
	version := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *version {
		fmt.Println(inkwell.VersionTag())
		return nil
	}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.Decode("")
	}
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	m, err := newModel(cfg)
	if err != nil {
		return err
	}
	log.Info().Str("version", inkwell.Version()).Msg("starting")

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = p.Run()
	return err
}

func main() {
	if err := run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
