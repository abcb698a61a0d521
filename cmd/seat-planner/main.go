package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/seat-planner/audio"
	"github.com/lixenwraith/seat-planner/config"
	"github.com/lixenwraith/seat-planner/constants"
	"github.com/lixenwraith/seat-planner/core"
	"github.com/lixenwraith/seat-planner/importer"
	"github.com/lixenwraith/seat-planner/model"
	"github.com/lixenwraith/seat-planner/seating"
	"github.com/lixenwraith/seat-planner/view"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the session crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run wires the session and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, os.Environ(), config.DefaultDotEnv, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "seat-planner: %v\n", err)
		return 1
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	students, room, err := prepare(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "seat-planner: %v\n", err)
		return 1
	}
	log.Printf("Room %s, %d seats, %d students", room, room.SeatCount(), len(students))
	if len(students) > room.SeatCount() {
		log.Printf("More students than seats: %d unplaceable", len(students)-room.SeatCount())
	}

	ctrl := seating.NewController(room, students)

	player := audio.NewPlayer(audio.Config{
		Enabled:      cfg.Sound,
		MasterVolume: cfg.Volume,
		SampleRate:   constants.AudioSampleRate,
	})
	if err := player.Initialize(); err != nil {
		// Sound is optional, the session continues silently
		log.Printf("Audio initialization failed: %v", err)
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	core.RegisterScreen(screen)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	v := view.New(screen, ctrl, player)
	core.Go(func() {
		done <- v.Run(ctx)
	})
	runErr := <-done

	core.RegisterScreen(nil)
	screen.Fini()

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		fmt.Fprintf(stderr, "seat-planner: %v\n", runErr)
		return 1
	}

	st := ctrl.Stats()
	fmt.Fprintf(stdout, "Placed %d of %d students, %d free seats\n", st.Placed, st.Placed+st.Unplaced, st.FreeSeats)
	log.Printf("Session ended: %+v", st)
	return 0
}

// prepare loads the roster and builds the room
func prepare(cfg config.Config) ([]*model.Student, *model.Room, error) {
	var students []*model.Student
	if cfg.RosterPath != "" {
		loaded, err := importer.LoadFile(cfg.RosterPath)
		if err != nil {
			return nil, nil, err
		}
		students = loaded
	} else {
		students = importer.Demo(cfg.DemoSize)
	}

	room, err := cfg.BuildRoom()
	if err != nil {
		return nil, nil, fmt.Errorf("room layout: %w", err)
	}
	return students, room, nil
}
