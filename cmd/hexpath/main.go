// Command hexpath runs a pathfinding scenario on a generated hex
// map: it builds a rectangular grid from a YAML scenario file,
// derives terrain costs from noise, and reports the A* and
// breadth-first paths between the configured start and goal.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/romanb/hexkit/geo"
	"github.com/romanb/hexkit/grid"
	"github.com/romanb/hexkit/hex"
	"github.com/romanb/hexkit/internal/config"
	"github.com/romanb/hexkit/internal/terrain"
	"github.com/romanb/hexkit/search"
)

func main() {
	configPath := os.Getenv("SCENARIO_PATH")
	if configPath == "" {
		configPath = "./configs/scenario.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load scenario: %v", err)
	}
	log.WithFields(log.Fields{
		"scenario":    configPath,
		"orientation": cfg.Schema.Orientation,
		"cols":        cfg.Grid.Cols,
		"rows":        cfg.Grid.Rows,
	}).Info("Scenario loaded")

	if cfg.Schema.Orientation == "flat" {
		schema := geo.NewSchema(cfg.Schema.SideLength, geo.FlatTop)
		shape := hex.RectXZOdd(cfg.Grid.Cols, cfg.Grid.Rows)
		run(cfg, grid.New[hex.OddCol](schema, shape), func(c config.CoordConfig) hex.OddCol {
			return hex.OddCol{Col: c.Col, Row: c.Row}
		})
	} else {
		schema := geo.NewSchema(cfg.Schema.SideLength, geo.PointyTop)
		shape := hex.RectZXOdd(cfg.Grid.Cols, cfg.Grid.Rows)
		run(cfg, grid.New[hex.OddRow](schema, shape), func(c config.CoordConfig) hex.OddRow {
			return hex.OddRow{Col: c.Col, Row: c.Row}
		})
	}
}

func run[C hex.Coords[C]](cfg *config.Config, g *grid.Grid[C], coord func(config.CoordConfig) C) {
	log.WithFields(log.Fields{
		"tiles":  g.Size(),
		"width":  g.Width(),
		"height": g.Height(),
	}).Info("Grid built")

	field := terrain.Generate(g, cfg.Terrain.Seed, cfg.Terrain.Frequency)
	field.Bound(cfg.Search.MaxCost, cfg.Search.MaxDistance)

	start := coord(cfg.Search.Start)
	goal := coord(cfg.Search.Goal)
	for _, c := range []C{start, goal} {
		if _, ok := g.Get(c); !ok {
			log.Fatalf("Coordinate %v is not on the grid", c)
		}
		k, _ := field.Kind(c)
		log.WithFields(log.Fields{"coords": c.String(), "terrain": k.String()}).Info("Endpoint")
	}

	if path, ok := search.AStarPath(start, goal, field); ok {
		report("astar", path)
	} else {
		log.WithField("algorithm", "astar").Warn("No path within bounds")
	}
	if path, ok := search.BFSPath(start, goal, field); ok {
		report("bfs", path)
	} else {
		log.WithField("algorithm", "bfs").Warn("No path within bounds")
	}
}

func report[C hex.Coords[C]](algorithm string, path search.Path[C]) {
	steps := make([]string, len(path))
	for i, n := range path {
		steps[i] = n.Coords.String()
	}
	log.WithFields(log.Fields{
		"algorithm": algorithm,
		"length":    len(path),
		"cost":      path.Cost(),
		"steps":     steps,
	}).Info("Path found")
}
