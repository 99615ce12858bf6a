// Command mazeview shows generated mazes, their graphs and a ghost chasing
// PacMann along shortest non-backtracking paths in the terminal.
//
// Keys:
//
//	n          new maze
//	g          toggle the graph overlay
//	c          toggle the chase
//	r          respawn ghost and PacMann
//	space      pause or resume the chase
//	q, Esc     quit
//
// Settings come from the environment or a .env file (see package config).
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/katalvlaran/mazepath/chase"
	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/mazegen"
	"github.com/katalvlaran/mazepath/mazegraph"
	"github.com/katalvlaran/mazepath/render"
	"github.com/katalvlaran/mazepath/sound"
	"github.com/katalvlaran/mazepath/tilegrid"
)

const (
	stepMs = 150
)

// App is the viewer's state.
type App struct {
	screen   tcell.Screen
	renderer *render.Renderer
	player   *sound.Player
	logger   *log.Logger
	cfg      config.Config
	rng      *rand.Rand

	grid      *tilegrid.TileGrid
	graph     *mazegraph.Graph
	showGraph bool
	chase     *chase.Chase
	running   bool
	status    string
}

// NewApp builds the first maze for cfg on screen.
func NewApp(screen tcell.Screen, cfg config.Config, logger *log.Logger, player *sound.Player) (*App, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a := &App{
		screen:    screen,
		renderer:  render.New(screen),
		player:    player,
		logger:    logger,
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		showGraph: cfg.ShowGraph,
	}
	logger.Printf("%s[INFO]%s seed %d", config.LogInfoColor, config.LogColorReset, seed)
	if err := a.newMaze(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) newMaze() error {
	grid, err := mazegen.Generate(a.cfg.Maze(), a.rng)
	if err != nil {
		return err
	}
	a.grid = grid
	a.graph = mazegraph.Build(grid, mazegraph.DefaultSeed)
	a.logger.Printf("%s[INFO]%s new maze %dx%d tiles, %d vertices, %d edges",
		config.LogInfoColor, config.LogColorReset, grid.Width(), grid.Height(), a.graph.Len(), a.graph.NumEdges())
	if a.chase != nil {
		a.respawn()
	}
	a.play(sound.NewMazeJingle)
	a.status = "new maze"
	return nil
}

func (a *App) respawn() {
	c := chase.Spawn(a.graph, a.rng)
	a.chase = &c
	a.running = true
	a.status = "chase!"
}

func (a *App) play(notes []sound.Note) {
	if err := a.player.Play(notes); err != nil {
		a.logger.Printf("%s[WARN]%s sound: %v", config.LogWarnColor, config.LogColorReset, err)
	}
}

// step advances the chase by one move of each side.
func (a *App) step() {
	if a.chase == nil || !a.running {
		return
	}
	if a.chase.Caught(a.graph) {
		a.running = false
		a.status = "caught! press r to respawn"
		a.logger.Printf("%s[INFO]%s caught at %v", config.LogInfoColor, config.LogColorReset,
			a.graph.Loc(a.graph.Head(a.chase.Pursuer)))
		a.play(sound.CaughtJingle)
		return
	}
	if !a.chase.Advance(a.graph) {
		a.status = "no route without turning back"
	} else {
		a.status = "chase!"
	}
	a.chase.Quarry = chase.Wander(a.graph, a.chase.Quarry, a.rng)
}

func (a *App) draw() {
	a.renderer.Frame(render.State{
		Grid:      a.grid,
		Graph:     a.graph,
		ShowGraph: a.showGraph,
		Chase:     a.chase,
		Status:    fmt.Sprintf("%s  [n]ew [g]raph [c]hase [r]espawn [space] pause [q]uit", a.status),
	})
}

// handleInput applies ev and reports whether the viewer keeps running.
func (a *App) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case 'n':
			if err := a.newMaze(); err != nil {
				a.logger.Printf("%s[ERROR]%s new maze: %v", config.LogErrorColor, config.LogColorReset, err)
				a.status = err.Error()
			}
		case 'g':
			a.showGraph = !a.showGraph
		case 'c':
			if a.chase == nil {
				a.respawn()
			} else {
				a.chase, a.running = nil, false
				a.status = ""
			}
		case 'r':
			a.respawn()
		case ' ':
			if a.chase != nil {
				a.running = !a.running
			}
		}

	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) run() {
	ticker := time.NewTicker(stepMs * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	a.draw()
	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}
			a.draw()

		case <-ticker.C:
			if a.running {
				a.step()
				a.draw()
			}
		}
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := newLogger("MAZEVIEW", config.ColorCyan, logFile)

	player := sound.NewPlayer()
	if cfg.Sound {
		if err := player.Initialize(); err != nil {
			// Non-fatal, the viewer runs without sound
			logger.Printf("%s[WARN]%s audio initialization failed: %v", config.LogWarnColor, config.LogColorReset, err)
		}
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	app, err := NewApp(screen, cfg, logger, player)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to build maze: %v\n", err)
		os.Exit(1)
	}
	app.run()
}
