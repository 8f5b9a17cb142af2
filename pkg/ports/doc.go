/*
Package ports defines the driven ports (interfaces) for the b3270 core.

These interfaces decouple the event/action layer from the protocol engine
and from the host's scheduling, so the trackers and actions can run against
the in-memory engine in tests and against a real engine in production.

# Key Interfaces

  - Engine: Reports connection state, host, traffic counters and security
    posture, and notifies subscribers when any of them change.
  - Scheduler: Arms and cancels one-shot timeouts on the event loop.
*/
package ports
