package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"mancala/config"
	"mancala/engine"
	"mancala/render"
	"mancala/source"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Positional names win over config: `mancala Ada Bea`
	names := cfg.Names()
	if args := flag.Args(); len(args) >= 2 {
		names[0], names[1] = args[0], args[1]
	}

	sources := buildSources(cfg, names)

	for {
		e := engine.New(names, sources, engine.WithObserver(func(u engine.Update) {
			fmt.Println()
			fmt.Print(render.Frame(names, u.State.Board, u.State.Current))
		}))

		fmt.Print(render.Frame(names, e.State.Board, e.State.Current))
		result, err := e.Run()
		if err != nil {
			log.Error().Err(err).Msg("round aborted")
			os.Exit(1)
		}
		if result.Quit {
			break
		}

		fmt.Println()
		fmt.Println(render.ResultLine(names, result.Result))
		if !playAgain(os.Stdin, os.Stdout) {
			break
		}
	}
	fmt.Println("Thanks for playing!")
}

// buildSources wires one move source per seat. Interactive seats share a
// single source so they also share the stdin scanner.
func buildSources(cfg config.Config, names [2]string) [2]engine.MoveSource {
	interactive := source.NewInteractive(os.Stdin, os.Stdout, names)

	var sources [2]engine.MoveSource
	for i, p := range []config.Player{cfg.Player0, cfg.Player1} {
		if p.Source == config.SourceRandom {
			sources[i] = source.NewRandom(uint64(time.Now().UnixNano()) + uint64(i))
		} else {
			sources[i] = interactive
		}
	}
	return sources
}

func playAgain(in io.Reader, out io.Writer) bool {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\nWould you like to play again (y/n)? ")
		if !scanner.Scan() {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch answer {
		case "y":
			return true
		case "n":
			return false
		}
		fmt.Fprintln(out, "Please type 'y' or 'n'.")
	}
}
