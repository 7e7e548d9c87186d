package fileio

// Notifier is told about log files being opened and closed and about a log
// folder that cannot be prepared.
type Notifier interface {
	// OnLogFileOpened is invoked when a facility starts writing to a new log file.
	OnLogFileOpened(path string)

	// OnLogFileClosed is invoked when a facility stops writing to a log file.
	OnLogFileClosed(path string)

	// OnLogFolderInvalid is invoked when the log folder cannot be created.
	OnLogFolderInvalid(path string)
}

// FailureNotifier is optionally implemented by a Notifier that wants to hear
// about dropped log events.
type FailureNotifier interface {
	OnWriteFailed(path string, err error)
}

// NotifierFuncs adapts plain functions to Notifier and FailureNotifier.
// Nil fields are ignored.
type NotifierFuncs struct {
	Opened        func(path string)
	Closed        func(path string)
	FolderInvalid func(path string)
	WriteFailed   func(path string, err error)
}

func (n NotifierFuncs) OnLogFileOpened(path string) {
	if n.Opened != nil {
		n.Opened(path)
	}
}

func (n NotifierFuncs) OnLogFileClosed(path string) {
	if n.Closed != nil {
		n.Closed(path)
	}
}

func (n NotifierFuncs) OnLogFolderInvalid(path string) {
	if n.FolderInvalid != nil {
		n.FolderInvalid(path)
	}
}

func (n NotifierFuncs) OnWriteFailed(path string, err error) {
	if n.WriteFailed != nil {
		n.WriteFailed(path, err)
	}
}

// Compile-time interface satisfaction checks.
var (
	_ Notifier        = NotifierFuncs{}
	_ FailureNotifier = NotifierFuncs{}
)
