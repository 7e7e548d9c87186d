package facility

import "github.com/dailylog/dailylog/pkg/log"

// Printer is a console primitive that shows a formatted log line.
// Implementations must be safe for concurrent use.
type Printer interface {
	Print(source string, level log.Level, line string)
}

// PrinterFunc adapts a function to Printer.
type PrinterFunc func(source string, level log.Level, line string)

// Print calls fn.
func (fn PrinterFunc) Print(source string, level log.Level, line string) {
	fn(source, level, line)
}

// Format renders text as "<emoticon> <LEVEL>: <text>".
func Format(level log.Level, text string) string {
	return level.Emoticon() + " " + level.String() + ": " + text
}

// PrinterFacility prints every event synchronously through a Printer.
type PrinterFacility struct {
	printer Printer
	minimum log.Level
}

// NewPrinterFacility creates a PrinterFacility. All levels are printed
// unless WithMinimumLevel is given; other options are ignored.
func NewPrinterFacility(printer Printer, opts ...Option) *PrinterFacility {
	o := defaultOptions(log.LevelInfo)
	for _, opt := range opts {
		opt(&o)
	}
	return &PrinterFacility{
		printer: printer,
		minimum: o.minimum,
	}
}

// Enabled reports whether a printer is attached.
func (p *PrinterFacility) Enabled() bool {
	return p.printer != nil
}

// Log prints message. It does nothing without a printer.
func (p *PrinterFacility) Log(source string, level log.Level, message log.Message) {
	if p.printer == nil || !level.AtLeast(p.minimum) {
		return
	}
	p.printer.Print(source, level, Format(level, message.String()))
}

// LogError prints err. It does nothing without a printer.
func (p *PrinterFacility) LogError(source string, level log.Level, err error) {
	if p.printer == nil || !level.AtLeast(p.minimum) {
		return
	}
	p.printer.Print(source, level, Format(level, log.FormatError(err)))
}

// Compile-time interface satisfaction checks.
var (
	_ log.Facility = (*PrinterFacility)(nil)
	_ Printer      = PrinterFunc(nil)
)
