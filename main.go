package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/input"
	"hexcrawl/pkg/engine/terminal"
	"hexcrawl/pkg/game/devtools"
	"hexcrawl/pkg/game/dungeon"
	"hexcrawl/pkg/game/generator"
	"hexcrawl/pkg/game/state"
	"hexcrawl/pkg/logger"
)

func initGettext(locale string) {
	gotext.Configure("locales", locale, "default")
}

// printFloor writes the one-line summary and map of a generated floor
func printFloor(w io.Writer, level int, d *dungeon.Dungeon, preview bool) error {
	fmt.Fprintf(w, gotext.Get("FLOOR_HEADER")+"\n", level, d.Area.DisplayName(), d.Seed)
	fmt.Fprintf(w, gotext.Get("FLOOR_STATS")+"\n",
		d.WalkableCount(),
		hex.Distance(d.Start(), d.Stairs()),
		len(d.GoldCoords()),
		len(d.Spawns()),
	)
	if d.Fallback {
		fmt.Fprintf(w, gotext.Get("FLOOR_FALLBACK")+"\n", d.Attempts-1)
	}
	for _, s := range d.Spawns() {
		fmt.Fprintf(w, gotext.Get("FLOOR_SPAWN")+"\n", s.Kind.DisplayName(), s.Coord)
	}
	fmt.Fprintln(w)

	var err error
	if preview {
		err = devtools.Preview(w, d, d.Start(), false, 0)
	} else {
		err = devtools.WriteMap(w, d, false)
	}
	fmt.Fprintln(w)
	return err
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, gotext.Get("EXPLORE_HELP"))
	byAction := input.GetBindingsByAction()
	for act := input.ActionMoveEast; act <= input.ActionQuit; act++ {
		fmt.Fprintf(w, "  %-16s %v\n", input.ActionName(act), byAction[act])
	}
}

// explore runs an interactive crawl reading commands from in
func explore(in io.Reader, out io.Writer, gen generator.GridGenerator, seed int64, preview bool) error {
	g := state.NewGame(gen, seed)
	r := input.NewReader(in)
	printHelp(out)

	for {
		fmt.Fprintln(out)
		fmt.Fprintf(out, gotext.Get("EXPLORE_STATUS")+"\n",
			g.Level, g.Dungeon.Area.DisplayName(), g.Health, g.MaxHealth, g.Gold)
		var err error
		if preview {
			err = devtools.PreviewWith(out, g.Dungeon, true, terminal.GetWidth(), devtools.DefaultPalette(), g.Symbol)
		} else {
			err = devtools.WriteMapOverlay(out, g.Dungeon, true, g.Symbol)
		}
		if err != nil {
			return err
		}
		for _, msg := range g.Messages {
			fmt.Fprintln(out, msg)
		}
		g.ClearMessages()
		if g.Dead() {
			fmt.Fprintf(out, gotext.Get("PLAYER_DIED")+"\n", g.Level, g.Gold)
			return nil
		}
		fmt.Fprint(out, "> ")

		intent, line, err := r.ReadIntent()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}

		if dir, ok := intent.Action.Direction(); ok {
			if !g.Step(dir) {
				g.AddMessage(gotext.Get("DIRECTION_BLOCKED"))
			}
			continue
		}

		switch intent.Action {
		case input.ActionDescend:
			if !g.Descend() {
				g.AddMessage(gotext.Get("NOT_ON_STAIRS"))
				continue
			}
			g.AddMessage(fmt.Sprintf(gotext.Get("DESCENDED"), g.Level))
		case input.ActionMap:
			if err := devtools.WriteMapOverlay(out, g.Dungeon, false, g.Symbol); err != nil {
				return err
			}
		case input.ActionDump:
			path, err := devtools.DumpMapToFile(g.Dungeon, "")
			if err != nil {
				g.AddMessage(err.Error())
				continue
			}
			g.AddMessage(fmt.Sprintf(gotext.Get("DUMP_WRITTEN"), path))
		case input.ActionHelp:
			printHelp(out)
		case input.ActionQuit:
			fmt.Fprintln(out, gotext.Get("GOODBYE"))
			return nil
		default:
			g.AddMessage(fmt.Sprintf(gotext.Get("UNKNOWN_COMMAND"), line))
		}
	}
}

func main() {
	depth := flag.Int("depth", 1, "first floor depth to generate")
	seed := flag.Int64("seed", 0, "base seed (0 picks a time-based seed)")
	floors := flag.Int("floors", 1, "number of consecutive floors to generate")
	dump := flag.String("dump", "", "write a debug dump of the first floor to this file")
	preview := flag.Bool("preview", false, "colour the map output")
	explorer := flag.Bool("explore", false, "walk the floors interactively")
	locale := flag.String("locale", "en_GB", "message locale")
	flag.Parse()

	logger.Init(os.Stderr)
	initGettext(*locale)
	log := logger.Component("main")

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.WithField("seed", *seed).Debug("Starting")

	if *explorer {
		if err := explore(os.Stdin, os.Stdout, generator.DefaultGenerator, *seed, *preview); err != nil {
			log.WithError(err).Fatal("Explorer stopped")
		}
		return
	}

	for i := 0; i < max(1, *floors); i++ {
		level := *depth + i
		d := generator.GenerateFloor(level, *seed+int64(level))

		if i == 0 && *dump != "" {
			path, err := devtools.DumpMapToFile(d, *dump)
			if err != nil {
				log.WithError(err).Fatal("Map dump failed")
			}
			fmt.Printf(gotext.Get("DUMP_WRITTEN")+"\n", path)
		}

		if err := printFloor(os.Stdout, level, d, *preview); err != nil {
			log.WithError(err).Fatal("Cannot print floor")
		}
	}
}
