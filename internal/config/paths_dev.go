//go:build !prod

package config

// DefaultDataDir keeps data next to the working directory in development so it
// is easy to inspect.
func DefaultDataDir() string {
	return "data"
}

func IsDevelopment() bool {
	return true
}
