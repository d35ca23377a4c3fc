// Package cli implements the copy-client-names command line: flag handling,
// run logging, and exit codes around a single clientnames.Copier run.
package cli
