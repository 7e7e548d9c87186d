// Command logtool inspects and maintains daily log folders.
//
// Usage:
//
//	logtool <command> [flags] <args>
//
// Commands:
//
//	list     List the log files of a folder
//	export   Export a JSON log file to JSONL, CSV or CBOR
//	filter   Filter a JSON log file and write a new one
//	stats    Show statistics about a JSON log file
//	prune    Delete log files older than the newest N days
//	watch    Print log file changes in a folder
//	write    Emit one event through the configured facilities
//
// Examples:
//
//	# List files written after a date
//	logtool list --after 2024-03-01 /var/log/app
//
//	# Keep only errors of one source
//	logtool filter --source sync --level error -o errors.json /var/log/app/2024-03-07.json
//
//	# Keep a week of logs
//	logtool prune --keep 7 /var/log/app
//
//	# Write an event using a config file
//	logtool write --config logging.yaml --level warning --source cron "disk almost full"
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
