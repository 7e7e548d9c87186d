// Package jsonlog reads the daily JSON log files written by
// facility.JSONFacility.
//
// A file is a JSON array of records. Reader streams records one at a time
// and applies a Filter; ReadFile loads a whole file. Records can be
// re-encoded as CBOR for compact export.
package jsonlog
