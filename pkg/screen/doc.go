/*
Package screen models the emulator's 3270 screen buffer.

The buffer is a flat array of cells addressed by a linear buffer address
computed from row, column and the configured width. Address arithmetic wraps
within the buffer and never goes out of bounds. Each cell carries a host
character code, its display class, highlighting, and its role in a
double-byte (DBCS) pair. Field attribute cells mark the start of protected or
unprotected regions; a cell's protection is inherited from the nearest field
attribute at or before it.

The buffer is owned by a single goroutine (the back-end event loop) and is not
safe for concurrent use.
*/
package screen
