// Package app wires application dependencies for the CLI.
//
// It loads Config through viper, builds the zerolog logger, and assembles
// the console, clipboard and session service into a Wire for commands to use.
package app
