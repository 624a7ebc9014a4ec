package infra

import "time"

// ExtractionConfig describes how the external document extraction agent is
// invoked. Command and Args are the executable and its fixed arguments; the
// document paths are appended per run.
type ExtractionConfig struct {
	Command  string
	Args     []string
	Timeout  time.Duration
	AllFiles bool
}
