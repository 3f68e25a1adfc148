// Package leakgate provides the command-line interface for the leakgate
// tool. It configures subcommands (scan, baseline, rules, hook), parses
// flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/leakgate/leakgate/cmd/leakgate"
//	func main() { leakgate.Execute() }
package leakgate
