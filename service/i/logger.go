package i

// Logger is the logging surface the services depend on.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
	Debug(string)
}
