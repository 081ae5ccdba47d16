// Package console adapts the terminal to the domain LineSource and Printer
// contracts.
//
// LinerSource gives line editing when stdin is a terminal and turns Ctrl-C at
// the prompt into domain.ErrInterrupted. ScannerSource reads newline-separated
// input from pipes and files. Both stop waiting when the context is cancelled.
package console
