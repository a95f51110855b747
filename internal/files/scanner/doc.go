// Package scanner finds the lines of a single file that contain a query.
//
// The scanner package is responsible for:
//   - Opening a candidate file and releasing it on every exit path
//   - Decoding it as text (UTF-8, with BOM-selected UTF-8/UTF-16 handling)
//   - Splitting it into physical lines on \n, dropping a trailing \r
//   - Literal, case-sensitive substring matching of each line
//   - Producing MatchRecords with 1-based line numbers and trimmed content
//
// A file that cannot be opened yields no records and no error. A file with a
// line that is not valid UTF-8 fails with tsea.ErrInvalidText so the caller
// can skip it and move on to the next file.
package scanner
