package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"time"

	"fyne.io/fyne/v2"
	"github.com/tdewolff/argp"

	"Drawall/internal/board"
	"Drawall/internal/config"
	"Drawall/internal/logx"
	tapnet "Drawall/internal/net"
	"Drawall/internal/ui"
)

// Draw opens the drawing window.
type Draw struct {
	Config    string `short:"c" desc:"Configuration file (TOML)"`
	Input     string `short:"i" default:"auto" desc:"Input mode: touch, pointer or auto"`
	Guides    bool   `short:"g" desc:"Show the guide overlay"`
	Tap       string `desc:"Serve board events over websocket on this address, e.g. :8888"`
	Advertise bool   `desc:"Advertise the event tap over mDNS"`
	LogLevel  string `name:"log-level" desc:"Log level: debug, info, warn or error"`
}

// Watch prints the events of a running tap.
type Watch struct {
	Timeout int    `short:"t" default:"3" desc:"Seconds to browse for a tap when no URL is given"`
	URL     string `index:"0" desc:"Tap URL, e.g. ws://host:8888/events"`
}

func main() {
	root := argp.NewCmd(&Draw{}, "Freehand drawing with touch or pointer input")
	root.AddCmd(&Watch{}, "watch", "Print the events of a running drawall tap")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Draw) Run() error {
	cfg := config.Default()
	if cmd.Config != "" {
		var err error
		if cfg, err = config.Load(cmd.Config); err != nil {
			return err
		}
	}
	if err := cmd.apply(&cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	setupLogging(cfg.Log.Level)

	size := fyne.NewSize(float32(cfg.Surface.Width), float32(cfg.Surface.Height))
	app, err := ui.NewApp("Drawall", size, cfg.BoardOptions())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Tap.Listen != "" {
		stop, err := startTap(ctx, cfg.Tap, app.Board.Board())
		if err != nil {
			log.Fatalf("Failed to start event tap: %v", err)
		}
		defer stop()
	}

	app.Run()
	return nil
}

// apply lays the command line over the file configuration.
func (cmd *Draw) apply(cfg *config.Config) error {
	switch cmd.Input {
	case "", "auto":
	case "touch", "pointer":
		touch := cmd.Input == "touch"
		cfg.Surface.Touch = &touch
	default:
		return fmt.Errorf("unknown input mode %q", cmd.Input)
	}
	if cmd.Guides {
		cfg.Surface.Guides = true
	}
	if cmd.Tap != "" {
		cfg.Tap.Listen = cmd.Tap
	}
	if cmd.Advertise {
		cfg.Tap.Advertise = true
	}
	if cmd.LogLevel != "" {
		cfg.Log.Level = cmd.LogLevel
	}
	return nil
}

func setupLogging(level string) {
	l, _ := logx.ParseLevel(level)
	logx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}

// startTap publishes every board event on a websocket tap and optionally
// advertises it. The returned func stops the advertisement.
func startTap(ctx context.Context, cfg config.Tap, b *board.Board) (func(), error) {
	l, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return nil, err
	}
	tap := tapnet.NewTap()
	b.OnAny(func(ev board.Event) {
		if err := tap.Publish(ev); err != nil {
			logx.Logger().Warn("tap: publish failed", "err", err)
		}
	})
	go func() {
		if err := tap.Serve(ctx, l); err != nil {
			logx.Logger().Error("tap: stopped", "err", err)
		}
	}()

	port := l.Addr().(*net.TCPAddr).Port
	log.Printf("Event tap at %s", tapnet.TapURL(tapnet.OutgoingIP(), port))

	if !cfg.Advertise {
		return func() {}, nil
	}
	srv, err := tapnet.Advertise(port)
	if err != nil {
		l.Close()
		return nil, err
	}
	return func() { srv.Shutdown() }, nil
}

func (cmd *Watch) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	url := cmd.URL
	if url == "" {
		timeout := time.Duration(cmd.Timeout) * time.Second
		err := tapnet.Browse(ctx, timeout, func(found string) {
			if url == "" {
				url = found
			}
		})
		if err != nil {
			return err
		}
		if url == "" {
			return errors.New("no drawall tap found on the local network")
		}
	}
	log.Printf("Watching %s", url)
	return tapnet.Watch(ctx, url, func(msg []byte) {
		fmt.Println(string(msg))
	})
}
