// Package config loads facility setups from YAML or TOML files.
//
// A configuration names the facilities a process logs to and their
// thresholds:
//
//	folder: /var/log/app
//	minimum_level: warning
//	facilities:
//	  - name: daily
//	    type: file
//	  - name: events
//	    type: json
//	    minimum_level: info
//	  - name: console
//	    type: printer
//	    color: true
//
// Load picks the decoder from the file extension. Build turns a Config
// into facilities and Register adds them to a log.Registry.
package config
