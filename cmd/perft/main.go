// Command perft counts legal move tree leaf nodes from a position
// and checks the counts for the starting position against the
// canonical table.  It is the primary debugging harness for the move
// generator: a mismatched total at depth N is narrowed down with
// -divide, which prints the subtree count under every root move.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/clinaresl/table"
	"github.com/fatih/color"
	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	chess "github.com/barakmich/chesscore"
	"github.com/barakmich/chesscore/internal/config"
	"github.com/barakmich/chesscore/internal/logging"
)

// out formats node counts with thousands separators.
var out = message.NewPrinter(language.English)

// startNodeCounts are the canonical perft values for the starting
// position, indexed by depth.
var startNodeCounts = []uint64{1, 20, 400, 8902, 197281, 4865609, 119060324}

func main() {
	var (
		configPath = flag.String("config", "", "path to a TOML settings file")
		fen        = flag.String("fen", "", "position to count from (overrides the config)")
		depth      = flag.Int("depth", 0, "deepest ply to count (overrides the config)")
		divide     = flag.Bool("divide", false, "print per root move subtree counts instead of totals")
		prof       = flag.Bool("profile", false, "write a CPU profile for the run")
		logLevel   = flag.String("log", "", "log level (overrides the config)")
	)
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *fen != "" {
		settings.Fen = *fen
	}
	if *depth > 0 {
		settings.Depth = *depth
	}
	if *logLevel != "" {
		settings.LogLevel = *logLevel
	}
	if *prof {
		settings.Profile = true
	}

	log := logging.GetLog()
	logging.SetLevel(settings.LogLevel)

	if settings.Profile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	pos, err := chess.PositionFromFEN(settings.Fen)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
	log.Infof("counting to depth %d from %s", settings.Depth, pos)

	if *divide {
		runDivide(pos, settings.Depth)
		return
	}
	if !runPerft(pos, settings.Depth) {
		os.Exit(1)
	}
}

func runPerft(pos *chess.Position, depth int) bool {
	tab, err := table.NewTable("l r r c")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}
	tab.AddRow("depth", "nodes", "time", "")
	tab.AddDoubleRule()

	isStart := pos.Eq(chess.StartingPosition())
	ok := color.New(color.FgGreen).Sprint("ok")
	fail := color.New(color.FgRed).Sprint("FAIL")

	allOk := true
	for d := 1; d <= depth; d++ {
		start := time.Now()
		nodes := pos.Perft(d)
		elapsed := time.Since(start).Round(time.Millisecond)

		check := ""
		if isStart && d < len(startNodeCounts) {
			if nodes == startNodeCounts[d] {
				check = ok
			} else {
				check = fail
				allOk = false
			}
		}
		tab.AddRow(d, out.Sprintf("%d", nodes), elapsed.String(), check)
	}
	fmt.Printf("%v", tab)
	return allOk
}

func runDivide(pos *chess.Position, depth int) {
	tab, err := table.NewTable("l r")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	tab.AddRow("move", "nodes")
	tab.AddDoubleRule()

	var total uint64
	for _, entry := range pos.Divide(depth) {
		tab.AddRow(pos.EncodeUCI(entry.Move), out.Sprintf("%d", entry.Nodes))
		total += entry.Nodes
	}
	tab.AddDoubleRule()
	tab.AddRow("total", out.Sprintf("%d", total))
	fmt.Printf("%v", tab)
}
