// Package codes reads door codes from line-oriented input.
//
// Input is sanitised before validation:
//
//   - everything from the first "####" marker to the end of input is dropped;
//   - "//" starts a comment running to the end of the line;
//   - lines are trimmed and empty lines are skipped.
//
// Every remaining line must consist of digits and 'A' only. Whether a line is
// a well-formed code (<digits>A) is left to the complexity package.
package codes
