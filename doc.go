/*
Package b3270 is the event/action back-end of a 3270 terminal emulator.

It sits between a protocol engine and an out-of-process user interface. Engine
state changes (connection lifecycle, TLS posture, traffic counters, toggles)
become a stream of single-line events, and the UI drives the emulator with a
small vocabulary of commands that inspect or change the screen buffer.

# Concept

All core state lives on one event loop. The engine's change notifications,
the stats timer, inbound command lines and requests from the HTTP adapter are
queued onto that loop and run one at a time, so no component is ever
re-entered and nothing below the facade needs a lock.

# Wire Format

Outbound, every event is one line: a tag followed by key="value" attributes
in a fixed order. Attributes without a value are left out.

	hello version="4.1.9" build="b3270 v4.1ga9" copyright="..."
	connection state="connected-3270" host="mainframe.example"
	stats bytes-received="1920" records-received="4" bytes-sent="12" records-sent="1"

Inbound, every line is one command:

	Model("3279-2","30x90")
	ClearRegion(1,1,2,80)
	Trace(On,/tmp/b3270.trace)

Each command is answered with a run-result event, preceded by a popup event
when it failed.

# Usage

	backend, err := b3270.New(
		b3270.WithOutput(os.Stdout),
		b3270.WithMinVersion("4.0"),
		b3270.WithLogger(logger),
	)
	if err != nil {
		log.Fatal(err) // fatal startup condition
	}
	if err := backend.Run(ctx, os.Stdin); err != nil {
		log.Fatal(err)
	}
*/
package b3270
