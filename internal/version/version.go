package version

// Populated at release time via -ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)
