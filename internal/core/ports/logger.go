package ports

// Logger reports droid's own diagnostics. Gradle output never passes through it.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info reports progress, such as the command line about to be spawned.
	Info(msg string)
	// Warn reports a recoverable problem, such as an unsupported config version.
	Warn(msg string)
	// Error renders err with its cause chain and metadata.
	Error(err error)
}
