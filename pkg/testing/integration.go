package testing

import "os"

// IntegrationEnabled reports whether container-backed tests should run.
// They need a Docker daemon, so they are opt-in via RPNCALC_INTEGRATION=1.
func IntegrationEnabled() bool {
	return os.Getenv("RPNCALC_INTEGRATION") == "1"
}
