// Package pathdemo runs the path finder over a hex board and reports the
// tuned search next to the shortest-path search.
package pathdemo

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/katalvlaran/hexpath/dijkstra"
	"github.com/katalvlaran/hexpath/hexgrid"
	"github.com/katalvlaran/hexpath/internal/config"
	"github.com/katalvlaran/hexpath/pathfinder"
)

// Config holds pathdemo command configuration.
type Config struct {
	Board           string           `env:"HEXPATH_BOARD"`
	Radius          int              `env:"HEXPATH_RADIUS"            envDefault:"2"`
	Seed            int64            `env:"HEXPATH_SEED"`
	Start           hexgrid.HexCoord `env:"HEXPATH_START"`
	End             hexgrid.HexCoord `env:"HEXPATH_END"`
	HexCostModifier float64          `env:"HEXPATH_HEX_COST_MODIFIER" envDefault:"1"`
	HeuristicWeight float64          `env:"HEXPATH_HEURISTIC_WEIGHT"  envDefault:"1"`
	MaxIterations   int              `env:"HEXPATH_MAX_ITERATIONS"    envDefault:"2000"`
	BlueCost        float64          `env:"HEXPATH_BLUE_COST"         envDefault:"2"`
	RedCost         float64          `env:"HEXPATH_RED_COST"          envDefault:"4"`
	Verbose         bool             `env:"HEXPATH_VERBOSE"`
}

// ParseConfig reads HEXPATH_* variables from environ (the process
// environment when nil), then lets flags in args override them.
func ParseConfig(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg, environ); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Board, "board", cfg.Board, "YAML board file (default: generated hexagon)")
	fs.IntVar(&cfg.Radius, "radius", cfg.Radius, "radius of the generated hexagon")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "paint the generated hexagon with random terrain (0 = all plain)")
	fs.TextVar(&cfg.Start, "start", cfg.Start, "start cell as q,r")
	fs.TextVar(&cfg.End, "end", cfg.End, "end cell as q,r")
	fs.Float64Var(&cfg.HexCostModifier, "hex-cost-modifier", cfg.HexCostModifier, "terrain cost weight in [0,1]")
	fs.Float64Var(&cfg.HeuristicWeight, "heuristic-weight", cfg.HeuristicWeight, "heuristic weight in [0,1]")
	fs.IntVar(&cfg.MaxIterations, "max-iterations", cfg.MaxIterations, "expansion cap of the tuned search")
	fs.Float64Var(&cfg.BlueCost, "blue-cost", cfg.BlueCost, "cost of entering a blue cell")
	fs.Float64Var(&cfg.RedCost, "red-cost", cfg.RedCost, "cost of entering a red cell")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose output")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting outside its allowed range.
func (c Config) Validate() error {
	switch {
	case c.HexCostModifier < 0 || c.HexCostModifier > 1:
		return fmt.Errorf("hex cost modifier %v outside [0,1]", c.HexCostModifier)
	case c.HeuristicWeight < 0 || c.HeuristicWeight > 1:
		return fmt.Errorf("heuristic weight %v outside [0,1]", c.HeuristicWeight)
	case c.MaxIterations < 0:
		return fmt.Errorf("max iterations %d is negative", c.MaxIterations)
	case c.BlueCost < 1 || c.RedCost < 1:
		return fmt.Errorf("terrain costs must be at least 1 (blue %v, red %v)", c.BlueCost, c.RedCost)
	case c.Board == "" && c.Radius < 0:
		return fmt.Errorf("%w: %d", hexgrid.ErrNegativeRadius, c.Radius)
	}
	return nil
}

// Run executes the pathdemo command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	board, err := loadBoard(cfg)
	if err != nil {
		return err
	}
	for _, c := range []hexgrid.HexCoord{cfg.Start, cfg.End} {
		if !board.Has(c) {
			return fmt.Errorf("%w: %v", hexgrid.ErrOutOfBoard, c)
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	cost := board.CostFunc(hexgrid.TerrainCosts{Plain: 1, Blue: cfg.BlueCost, Red: cfg.RedCost})

	tuned := pathfinder.New[hexgrid.HexCoord](board, cost,
		pathfinder.WithHexCostModifier(cfg.HexCostModifier),
		pathfinder.WithHeuristicWeight(cfg.HeuristicWeight),
		pathfinder.WithMaxIterations(cfg.MaxIterations),
	)
	path, found := tuned.FindPath(cfg.Start, cfg.End)

	shortest, _ := pathfinder.NewShortest[hexgrid.HexCoord](board, cost).FindPath(cfg.Start, cfg.End)

	fmt.Fprintf(out, "Found path cost: %v\n", pathfinder.PathCost[hexgrid.HexCoord](path, cost))
	fmt.Fprintf(out, "Shortest path cost: %v\n", pathfinder.PathCost[hexgrid.HexCoord](shortest, cost))
	fmt.Fprintf(out, "Iterations: %d\n", tuned.Iterations())
	fmt.Fprintf(out, "Reached end: %t\n", found)

	if !cfg.Verbose {
		return nil
	}

	logger := log.New(errOut, "", 0)
	logger.Printf("board: %d cells", board.Len())
	logger.Printf("path: %v", path)
	logger.Printf("visited: %d cells", len(tuned.Visited()))
	logger.Printf("connected: %t", board.Connected(cfg.Start, cfg.End, nil))

	dist, _, err := dijkstra.Dijkstra[hexgrid.HexCoord](board, cost, cfg.Start)
	if err != nil {
		return fmt.Errorf("reference search: %w", err)
	}
	if d, ok := dist[cfg.End]; ok {
		logger.Printf("dijkstra cost: %v", d)
	} else {
		logger.Printf("dijkstra: end unreachable")
	}
	return nil
}

// loadBoard reads cfg.Board when set, otherwise builds a hexagon of
// cfg.Radius, painted at random when cfg.Seed is non-zero.
func loadBoard(cfg Config) (*hexgrid.Board, error) {
	if cfg.Board != "" {
		f, err := os.Open(cfg.Board)
		if err != nil {
			return nil, fmt.Errorf("open board: %w", err)
		}
		defer f.Close()

		board, err := hexgrid.LoadBoard(f)
		if err != nil {
			return nil, fmt.Errorf("load board %s: %w", cfg.Board, err)
		}
		return board, nil
	}

	board, err := hexgrid.NewHexagon(cfg.Radius)
	if err != nil {
		return nil, err
	}
	if cfg.Seed != 0 {
		paint(board, rand.New(rand.NewSource(cfg.Seed)))
	}
	return board, nil
}

// paint colors about a quarter of the cells blue and a tenth red.
func paint(board *hexgrid.Board, rng *rand.Rand) {
	for _, c := range board.Coords() {
		terr := hexgrid.Plain
		switch p := rng.Float64(); {
		case p < 0.10:
			terr = hexgrid.Red
		case p < 0.35:
			terr = hexgrid.Blue
		}
		// Coords only yields on-board cells.
		_ = board.SetTerrain(c, terr)
	}
}
