package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dorijanhabek/orbfolio/internal/control"
	"github.com/dorijanhabek/orbfolio/internal/field"
	"github.com/dorijanhabek/orbfolio/internal/player"
	"github.com/dorijanhabek/orbfolio/internal/server"
	"github.com/dorijanhabek/orbfolio/internal/sim"
	"github.com/dorijanhabek/orbfolio/internal/ui"
	"github.com/dorijanhabek/orbfolio/internal/visualizer"
)

// tapBytes holds a little over a tenth of a second of 48 kHz stereo PCM.
const tapBytes = 4 * 4096

const usage = `usage:
  orbfolio [audio-file]   landing page, optionally with background music
  orbfolio pick [dir]     choose the background track from dir
  orbfolio serve [dir]    serve an existing web build from dir (default ./public; PORT, HOST)`

type command struct {
	name string // "", "pick", "serve" or "help"
	arg  string
}

var errUsage = errors.New("too many arguments")

func parseCommand(args []string) (command, error) {
	if len(args) == 0 {
		return command{}, nil
	}
	switch args[0] {
	case "-h", "--help", "help":
		return command{name: "help"}, nil
	case "pick", "serve":
		if len(args) > 2 {
			return command{}, errUsage
		}
		c := command{name: args[0]}
		if len(args) == 2 {
			c.arg = args[1]
		}
		return c, nil
	}
	if len(args) > 1 {
		return command{}, errUsage
	}
	return command{arg: args[0]}, nil
}

func main() {
	cmd, err := parseCommand(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n%s\n", err, usage)
		os.Exit(2)
	}

	switch cmd.name {
	case "help":
		fmt.Println(usage)
	case "serve":
		err = runServe(cmd.arg)
	case "pick":
		err = runPick(cmd.arg)
	default:
		err = runLanding(cmd.arg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(dir string) error {
	cfg, err := server.ConfigFromEnv(dir)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.New(cfg, log.New(os.Stderr, "orbfolio ", log.LstdFlags)).Run(ctx)
}

func runPick(dir string) error {
	if dir == "" {
		dir = "."
	}
	browser := ui.NewBrowser(dir)
	if err := browser.Error(); err != nil {
		return err
	}
	finalModel, err := tea.NewProgram(browser, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	bm, ok := finalModel.(ui.BrowserModel)
	if !ok {
		return fmt.Errorf("unexpected model type from browser")
	}
	result := bm.Result()
	if result.Cancelled {
		return nil
	}
	return runLanding(result.Path)
}

// runLanding shows the sphere. With a track, the music starts muted and the
// analyser listens to what the player hands the audio device.
func runLanding(path string) error {
	controls := control.New()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var music ui.Music
	var source sim.AmplitudeSource
	var analyser *visualizer.Analyser
	var title string
	if path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", path)
		}

		ring := visualizer.NewRingBuffer(tapBytes)
		p, err := player.New(path, ring)
		if err != nil {
			return fmt.Errorf("creating player: %w", err)
		}
		defer p.Close()

		music = p
		analyser = visualizer.NewAnalyser(ring, p.Channels())
		source = analyser
		title = player.ReadMetadata(path).String()
	}

	s := sim.New(field.DefaultPoints, controls, source, rng)
	model := ui.New(s, controls, music, title)
	if analyser != nil {
		model = model.WithSpectrum(analyser)
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	return err
}
