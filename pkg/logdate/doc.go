// Package logdate holds the calendar date attached to rotated log files.
//
// A Date is encoded into a fixed-width file name token such as 2024-03-07
// (or 20240307 without separators). The same Codec decodes file names back
// into dates so that directory listings can be filtered by recency.
//
// # File Names
//
// Codec.Encode produces the token without any extension. Codec.Decode strips
// the last extension first, so "2024-03-07.log" and "2024-03-07.json" both
// decode to the same Date. Names that do not match the exact width, contain
// non-digits, or carry an out-of-range month or day do not decode.
package logdate
