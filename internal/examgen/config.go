package examgen

// Config holds generation limits for a single exam request.
type Config struct {
	// MaxTokens caps the completion length. A cap that is too small for
	// the requested question count truncates the exam; the parser keeps
	// whatever arrived and grading treats keyless questions as incorrect.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// DefaultConfig returns limits that comfortably fit a 10-question exam.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.4,
	}
}
