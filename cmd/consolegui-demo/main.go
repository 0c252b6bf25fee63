package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/lixenwraith/consolegui/config"
	"github.com/lixenwraith/consolegui/feed"
	"github.com/lixenwraith/consolegui/terminal"
)

var (
	configFlag   = flag.String("config", "", "Scene config file (TOML), empty uses the built-in scene")
	backendFlag  = flag.String("backend", "", "Output backend: ansi, tcell (overrides config)")
	execFlag     = flag.String("exec", "", "Command whose output is tailed into the first log box")
	logFlag      = flag.String("log", "", "Debug log file, empty disables logging")
	snapshotFlag = flag.Bool("snapshot", false, "Render one frame as text to stdout and exit")
	dumpFlag     = flag.Bool("dump-config", false, "Print the effective config as TOML and exit")
	widthFlag    = flag.Int("width", 80, "Snapshot width")
	heightFlag   = flag.Int("height", 24, "Snapshot height")
)

// screen is what the render loop needs from an output backend
type screen interface {
	terminal.Output
	Size() (int, int)
	ReadKey() (string, error)
	Fini()
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the demo crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCONSOLEGUI CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*logFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig(*configFlag, *backendFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "consolegui: %v\n", err)
		os.Exit(2)
	}

	switch {
	case *dumpFlag:
		err = cfg.Encode(os.Stdout)
	case *snapshotFlag:
		err = snapshot(cfg, os.Stdout, *widthFlag, *heightFlag)
	default:
		err = run(cfg, *execFlag)
	}
	if err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "consolegui: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads path and applies the backend override
func loadConfig(path, backend string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if backend != "" {
		cfg.Backend = backend
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// snapshot renders a single frame headless and prints it as text
func snapshot(cfg *config.Config, w io.Writer, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("snapshot size %dx%d", width, height)
	}
	capture := terminal.NewCapture(width, height)
	a, err := newApp(cfg, capture, width, height, log.Default())
	if err != nil {
		return err
	}
	defer a.scene.Close()

	if err := a.frame(); err != nil {
		return err
	}
	_, err = io.WriteString(w, capture.String())
	return err
}

// openScreen opens the requested backend, falling back to tcell where the
// raw ANSI backend is not available
func openScreen(backend string) (screen, error) {
	if backend != config.BackendTcell {
		term := terminal.New(nil)
		err := term.Init()
		if err == nil {
			return term, nil
		}
		if !errors.Is(err, terminal.ErrUnsupportedPlatform) {
			return nil, err
		}
		log.Printf("ansi backend: %v, using tcell", err)
	}
	out, err := terminal.OpenTcell()
	if err != nil {
		return nil, err
	}
	return out, nil
}

// run drives the interactive loop until quit or input ends
func run(cfg *config.Config, command string) error {
	scr, err := openScreen(cfg.Backend)
	if err != nil {
		return fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}
	defer scr.Fini()

	width, height := scr.Size()
	a, err := newApp(cfg, scr, width, height, log.Default())
	if err != nil {
		return err
	}
	defer a.scene.Close()
	log.Printf("started %s backend %dx%d, %d elements", cfg.Backend, width, height, a.scene.Len())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var lines <-chan string
	if fields := strings.Fields(command); len(fields) > 0 {
		f, err := feed.StartWithOptions(ctx, []feed.Option{feed.WithLogger(log.Default())}, fields[0], fields[1:]...)
		if err != nil {
			a.logf("exec: %v", err)
		} else {
			defer f.Close()
			lines = f.Lines()
			a.logf("exec: %s", command)
		}
	}

	// Dedicated input goroutine
	keyCh := make(chan string, 16)
	go func() {
		defer close(keyCh)
		for {
			key, err := scr.ReadKey()
			if err != nil {
				return
			}
			keyCh <- key
		}
	}()

	ticker := time.NewTicker(time.Duration(cfg.FrameInterval()) * time.Millisecond)
	defer ticker.Stop()

	if err := a.frame(); err != nil {
		return err
	}
	for {
		select {
		case key, ok := <-keyCh:
			if !ok || a.handleKey(key) {
				return nil
			}
		case line, ok := <-lines:
			if !ok {
				lines = nil
				a.logf("exec: exited")
				continue
			}
			if a.console != nil {
				a.console.PushLine(line)
			}
		case <-ticker.C:
			if err := a.frame(); err != nil {
				return err
			}
		}
	}
}
