package pathfinder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexpath/bfs"
	"github.com/katalvlaran/hexpath/dijkstra"
	"github.com/katalvlaran/hexpath/hexgrid"
	"github.com/katalvlaran/hexpath/pathfinder"
)

const costEps = 1e-9

// randomBoard paints a hexagon with roughly 15% walls, 15% red, 20% blue
// and the rest plain.
func randomBoard(t testing.TB, rng *rand.Rand, radius int) *hexgrid.Board {
	t.Helper()
	b := hexagon(t, radius)
	for _, c := range b.Coords() {
		var terr hexgrid.Terrain
		switch p := rng.Float64(); {
		case p < 0.15:
			terr = hexgrid.Wall
		case p < 0.30:
			terr = hexgrid.Red
		case p < 0.50:
			terr = hexgrid.Blue
		default:
			terr = hexgrid.Plain
		}
		require.NoError(t, b.SetTerrain(c, terr))
	}
	return b
}

// randomOpenCell picks a non-wall cell, or reports false when the board is
// all walls.
func randomOpenCell(rng *rand.Rand, b *hexgrid.Board) (hex, bool) {
	var open []hex
	for _, c := range b.Coords() {
		if terr, _ := b.Terrain(c); hexgrid.Passable(terr) {
			open = append(open, c)
		}
	}
	if len(open) == 0 {
		return hex{}, false
	}
	return open[rng.Intn(len(open))], true
}

// blended applies the hex cost modifier to cost the way the finder does.
func blended(cost pathfinder.CostFunc[hex], m float64) dijkstra.CostFunc[hex] {
	return func(from, to hex) float64 {
		c := cost(from, to)
		if math.IsInf(c, 1) || math.IsNaN(c) {
			return math.Inf(1)
		}
		return m*c + (1 - m)
	}
}

func TestFindPath_MatchesDijkstra(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 40; trial++ {
		b := randomBoard(t, rng, 3)
		cost := b.CostFunc(hexgrid.DefaultTerrainCosts())
		start, ok1 := randomOpenCell(rng, b)
		end, ok2 := randomOpenCell(rng, b)
		if !ok1 || !ok2 {
			continue
		}

		dist, _, err := dijkstra.Dijkstra[hex](b, cost, start)
		require.NoError(t, err)
		want, reachable := dist[end]

		for _, w := range []float64{0, 0.5, 1} {
			pf := pathfinder.New[hex](b, cost, pathfinder.WithHeuristicWeight(w))
			path, found := pf.FindPath(start, end)
			require.Equal(t, reachable, found, "trial %d w=%v %v→%v", trial, w, start, end)
			requireChain(t, b, path, start)
			if !found {
				continue
			}
			assert.Equal(t, end, path[len(path)-1])
			assert.InDelta(t, want, pathfinder.PathCost[hex](path, cost), costEps,
				"trial %d w=%v %v→%v", trial, w, start, end)
		}
	}
}

func TestFindPath_BlendedCostIsOptimal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 30; trial++ {
		b := randomBoard(t, rng, 3)
		cost := b.CostFunc(hexgrid.DefaultTerrainCosts())
		start, ok1 := randomOpenCell(rng, b)
		end, ok2 := randomOpenCell(rng, b)
		if !ok1 || !ok2 {
			continue
		}

		for _, m := range []float64{0.25, 0.5, 0.75} {
			mixed := blended(cost, m)
			dist, _, err := dijkstra.Dijkstra[hex](b, mixed, start)
			require.NoError(t, err)
			want, reachable := dist[end]

			path, found := pathfinder.New[hex](b, cost, pathfinder.WithHexCostModifier(m)).FindPath(start, end)
			require.Equal(t, reachable, found, "trial %d m=%v", trial, m)
			if found {
				assert.InDelta(t, want, pathfinder.PathCost[hex](path, pathfinder.CostFunc[hex](mixed)), costEps,
					"trial %d m=%v", trial, m)
			}
		}
	}
}

func TestFindPath_ZeroModifierMinimizesSteps(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 30; trial++ {
		b := randomBoard(t, rng, 3)
		cost := b.CostFunc(hexgrid.DefaultTerrainCosts())
		start, ok1 := randomOpenCell(rng, b)
		end, ok2 := randomOpenCell(rng, b)
		if !ok1 || !ok2 {
			continue
		}

		res, err := bfs.BFS[hex](b, start, bfs.WithFilterNeighbor[hex](func(_, nb hex) bool {
			terr, _ := b.Terrain(nb)
			return hexgrid.Passable(terr)
		}))
		require.NoError(t, err)
		steps, reachable := res.Depth[end]

		path, found := pathfinder.New[hex](b, cost, pathfinder.WithHexCostModifier(0)).FindPath(start, end)
		require.Equal(t, reachable, found, "trial %d", trial)
		if found {
			assert.Equal(t, steps, len(path)-1, "trial %d %v→%v", trial, start, end)
		}
	}
}

// cheapestSimplePath enumerates every simple path from start to end and
// returns the lowest total cost, or +Inf when none exists.
func cheapestSimplePath(b *hexgrid.Board, cost pathfinder.CostFunc[hex], start, end hex) float64 {
	best := math.Inf(1)
	onPath := map[hex]bool{start: true}
	var walk func(c hex, total float64)
	walk = func(c hex, total float64) {
		if c == end {
			best = math.Min(best, total)
			return
		}
		for _, nb := range b.Neighbors(c) {
			w := cost(c, nb)
			if onPath[nb] || math.IsInf(w, 1) {
				continue
			}
			onPath[nb] = true
			walk(nb, total+w)
			onPath[nb] = false
		}
	}
	walk(start, 0)
	return best
}

func TestFindPath_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 60; trial++ {
		b := randomBoard(t, rng, 1)
		cost := b.CostFunc(hexgrid.DefaultTerrainCosts())
		start, ok1 := randomOpenCell(rng, b)
		end, ok2 := randomOpenCell(rng, b)
		if !ok1 || !ok2 {
			continue
		}

		want := cheapestSimplePath(b, cost, start, end)
		path, found := pathfinder.NewShortest[hex](b, cost).FindPath(start, end)
		if math.IsInf(want, 1) {
			assert.False(t, found, "trial %d", trial)
			continue
		}
		require.True(t, found, "trial %d %v→%v", trial, start, end)
		assert.InDelta(t, want, pathfinder.PathCost[hex](path, cost), costEps, "trial %d", trial)
	}
}

func TestFindPath_IterationCapIsMonotone(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	b := randomBoard(t, rng, 4)
	cost := b.CostFunc(hexgrid.DefaultTerrainCosts())

	var start, end hex
	for {
		var ok1, ok2 bool
		start, ok1 = randomOpenCell(rng, b)
		end, ok2 = randomOpenCell(rng, b)
		require.True(t, ok1 && ok2)
		if hexgrid.Distance(start, end) >= 4 && b.Connected(start, end, nil) {
			break
		}
	}

	full := pathfinder.NewShortest[hex](b, cost)
	want, found := full.FindPath(start, end)
	require.True(t, found)
	need := full.Iterations()

	for limit := 0; limit <= need+2; limit++ {
		pf := pathfinder.New[hex](b, cost, pathfinder.WithMaxIterations(limit))
		path, found := pf.FindPath(start, end)
		assert.Equal(t, limit >= need, found, "limit %d", limit)
		assert.Equal(t, min(limit, need), pf.Iterations(), "limit %d", limit)
		if found {
			assert.Equal(t, want, path, "limit %d", limit)
		}
	}
}
