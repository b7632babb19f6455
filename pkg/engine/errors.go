package engine

import "fmt"

// UnsupportedEngineError is returned for a source port install directory
// that matches no known engine.
type UnsupportedEngineError struct {
	Dir  string // install directory name, when discovered
	Port string
}

func (e *UnsupportedEngineError) Error() string {
	if e.Dir != "" {
		return fmt.Sprintf("source port directory %q (%s) not supported, please extend to support", e.Dir, e.Port)
	}
	return fmt.Sprintf("source port %q not supported, please extend to support", e.Port)
}

// UnsupportedConfigurationError is returned when a profile is asked for a
// variant it does not offer.
type UnsupportedConfigurationError struct {
	Engine  string
	Variant string
}

func (e *UnsupportedConfigurationError) Error() string {
	return fmt.Sprintf("engine %s does not support configuration %q", e.Engine, e.Variant)
}
