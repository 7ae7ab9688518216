package sobel

import "log"

// Warner receives human-readable diagnostics about rejected input.
type Warner interface {
	Warn(message string)
}

// WarnFunc adapts an ordinary function to the Warner interface.
type WarnFunc func(message string)

// Warn calls f(message).
func (f WarnFunc) Warn(message string) {
	f(message)
}

// logWarner writes diagnostics through the standard logger.
type logWarner struct{}

func (logWarner) Warn(message string) {
	log.Printf("sobel: %s", message)
}
