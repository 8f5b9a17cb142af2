/*
Package runner implements the single-threaded event loop and the inbound
line pump of the b3270 back-end.

Every piece of core state (screen, toggles, trackers) is touched only from
the loop goroutine. Other goroutines hand work to it with Post or Do, and
timers armed with AddTimeout fire on it as well.

# Key Components

  - Loop: Runs posted closures and timeouts strictly in order.
  - Pump: Reads newline-terminated commands from the UI.
  - SignalManager: Turns SIGINT/SIGTERM into context cancellation.

# Usage

	loop := runner.NewLoop(runner.WithLogger(logger))
	go loop.Run(ctx)

	pump := runner.NewPump(os.Stdin)
	err := pump.Run(ctx, func(line string) {
		loop.Post(func() { dispatcher.Run(line) })
	})
*/
package runner
