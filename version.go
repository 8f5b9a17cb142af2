package b3270

// Version is the build's own version, checked against the requested minimum
// at startup.
var Version = "4.1ga9"

// Build describes the build in the hello event.
var Build = "b3270 v" + Version

// Copyright is reported in the hello event.
const Copyright = "Copyright © 1993-2024, Paul Mattes.\n" +
	"Copyright © 1990, Jeff Sparkes.\n" +
	"Copyright © 1989, Georgia Tech Research Corporation (GTRC), Atlanta, GA\n" +
	" 30332.\n" +
	"All rights reserved."
