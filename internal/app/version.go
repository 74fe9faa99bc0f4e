package app

// Build information, overridden at link time with -ldflags.
var (
	Name      = "notin-service"
	Version   = "dev"
	GitTag    = ""
	BuildTime = ""
)
