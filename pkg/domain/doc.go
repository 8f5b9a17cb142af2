/*
Package domain contains the core models shared by every part of the b3270 back-end.

It defines the vocabulary exchanged between the terminal engine, the event stream
and the action dispatcher. This package is kept pure and free of I/O, following
the same Hexagonal Architecture split as the adapters that consume it.

# Key Entities

  - ConnectionState: The engine's connection lifecycle, observed but never commanded.
  - Event: A named, ordered set of optional attributes sent to the UI.
  - Counters: Traffic counters reported by the stats event.
  - SecurityInfo: The secure/verified posture reported by the ssl event.
  - Result: The outcome of an inbound action.
*/
package domain
