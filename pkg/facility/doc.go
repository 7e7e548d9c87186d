// Package facility provides the log.Facility implementations shipped with
// dailylog.
//
// # Daily files
//
// FileFacility and JSONFacility write one file per UTC calendar day,
// named after the date ("2024-03-07.log", "2024-03-07.json"). A Rotation
// decides which file an event goes to and tells a fileio.Notifier when
// files are opened and closed. Writes run on a log.Scope so the caller
// never waits for I/O; Flush waits for pending writes.
//
// JSON files are always a valid JSON array: a new file is seeded with "[]"
// and every event overwrites the closing bracket with ",{...}]".
//
// # Console and remote
//
// PrinterFacility renders "<emoticon> <LEVEL>: <message>" and hands the
// line to a Printer. RemoteFacility forwards events together with a set of
// session properties to a RemoteSink such as a crash reporting backend.
package facility
