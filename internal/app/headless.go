package app

import "github.com/diegok/pongsim/internal/game"

// runHeadless steps the simulation at a fixed dt with no keys held, for
// scripted runs and traces. It stops early on SIGINT/SIGTERM.
func (a *App) runHeadless() error {
	for i := 0; i < a.cfg.Frames; i++ {
		select {
		case <-a.quit:
			a.printSummary()
			return nil
		default:
		}

		ev := a.sim.Step(a.cfg.DT, game.NoKeys)
		if err := a.afterStep(ev, a.sim.Snapshot()); err != nil {
			return err
		}
	}

	a.printSummary()
	return nil
}
