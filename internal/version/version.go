package version

// Version is overridden at build time with -ldflags "-X bmicalc/internal/version.Version=...".
var Version = "0.1.0"
