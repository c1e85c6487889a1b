package types

// Version is the herald version, overridden at build time via -ldflags
var Version = "dev"
