package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"slime/internal/core"
	"slime/internal/sims/slime"
)

type scenario struct {
	seed  int64
	steps int
}

func (s scenario) String() string {
	return fmt.Sprintf("seed=%d steps=%d", s.seed, s.steps)
}

type result struct {
	scenario scenario

	totalMass int
	wetCells  int
	peakDepth uint8
	deepestY  int
}

func main() {
	steps := flag.Int("steps", 1200, "ticks to simulate per scenario")
	seeds := flag.Int("seeds", 16, "number of seeds to sweep")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	checkpoints := []int{*steps / 4, *steps / 2, *steps}
	var scenarios []scenario
	for seed := int64(1); seed <= int64(*seeds); seed++ {
		for _, n := range checkpoints {
			if n > 0 {
				scenarios = append(scenarios, scenario{seed: seed, steps: n})
			}
		}
	}

	start := time.Now()
	jobs := make(chan scenario)
	results := make(chan result)

	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- run(sc)
			}
		}()
	}
	go func() {
		for _, sc := range scenarios {
			jobs <- sc
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	var all []result
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].totalMass != all[j].totalMass {
			return all[i].totalMass > all[j].totalMass
		}
		return all[i].scenario.String() < all[j].scenario.String()
	})

	fmt.Printf("rain sweep: %d scenarios in %s\n", len(all), time.Since(start).Round(time.Millisecond))
	fmt.Printf("%-28s %10s %9s %6s %9s\n", "scenario", "mass", "wet", "peak", "deepestY")
	for _, res := range all {
		fmt.Printf("%-28s %10d %9d %6d %9d\n",
			res.scenario, res.totalMass, res.wetCells, res.peakDepth, res.deepestY)
	}
}

// run simulates one scenario headless: rain on, no pointer input.
func run(sc scenario) result {
	world := slime.NewWithConfig(slime.Config{Seed: sc.seed})
	world.Apply(slime.ActionRain)
	for i := 0; i < sc.steps; i++ {
		world.Step()
	}

	res := result{scenario: sc}
	f := world.Field()
	for y := 1; y < core.FieldHeight-1; y++ {
		for x := 1; x < core.FieldWidth-1; x++ {
			v := f.At(x, y)
			if v == 0 || v >= core.WallValue {
				continue
			}
			res.totalMass += int(v)
			res.wetCells++
			if v > res.peakDepth {
				res.peakDepth = v
			}
			if y > res.deepestY {
				res.deepestY = y
			}
		}
	}
	return res
}
