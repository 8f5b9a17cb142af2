/*
Package events serializes back-end events onto the outbound UI channel.

Each event is one line: the tag followed by its attributes, in order, as
key="value" pairs. Values are quoted with Go string syntax, so a line never
contains a raw newline and any value round-trips exactly through Parse.

	connection state="connected-3270" host="mainframe.example.com"
	stats bytes-received="1024" records-received="3" bytes-sent="96" records-sent="2"

An Emitter fans each event out to any number of Sinks (the stdout LineSink,
the Redis publisher, a Recorder in tests).
*/
package events
