// Package log is the application-facing logging facade of dailylog.
//
// A Logger formats nothing itself. Every call is scheduled on a Scope and,
// when the task runs, fans out to the facilities that are registered and
// enabled in a Registry at that moment. Facilities decide what to keep
// (minimum level) and where it goes (console, daily files, remote sinks).
//
// # Basic Usage
//
// Applications register their facilities once at startup:
//
//	files, _ := facility.NewFileFacility("/var/log/app")
//	log.Register("file", files)
//	log.Register("printer", facility.NewPrinterFacility(facility.NewConsolePrinter(os.Stderr)))
//
// and create one Logger per component:
//
//	logger := log.New("sync")
//	logger.Info("started", log.A("peers", 3))
//	logger.ErrorErr("upload failed", err, log.A("file-id", id))
//
// # Levels
//
// Four levels exist, ordered by severity: INFO, WARNING, ERROR and CRASH.
// Facilities compare levels with Severity and drop anything below their
// configured minimum.
//
// # Delivery
//
// Logging is fire and forget. Callers never see I/O errors and a panicking
// facility never crashes the host; Scope.Wait surfaces recovered panics for
// tests and shutdown paths.
package log
