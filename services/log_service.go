package services

// LogHandler is the logger every component receives through SetLogger.
type LogHandler interface {
	Debug(text string)
	Info(text string)
	Warn(text string)
	Error(text string, err error)
}

// LogWriter persists log records outside the process, e.g. in MongoDB.
type LogWriter interface {
	WriteLogMessage(data Data) error
}

type Data interface {
	DataType() string
}
