package ports

// Notifier prints user-facing status lines.
type Notifier interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
}
