package cmd

import (
	"context"
	"sync"
)

// loopGroup collects long-running component loops during setup and starts
// them together once nothing else can fail.
type loopGroup struct {
	runners []func(context.Context)
	wg      sync.WaitGroup
}

func (g *loopGroup) Add(run func(context.Context)) {
	g.runners = append(g.runners, run)
}

func (g *loopGroup) Start(ctx context.Context) {
	for _, run := range g.runners {
		g.wg.Add(1)
		go func() {
			defer g.wg.Done()
			run(ctx)
		}()
	}
}

// Wait blocks until every started loop has returned.
func (g *loopGroup) Wait() {
	g.wg.Wait()
}
