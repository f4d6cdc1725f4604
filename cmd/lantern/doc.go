// Command lantern exercises the event formatting pipeline from the
// terminal: repeated -q/-v flags pick the severity threshold, demo
// emits sample events, levels shows the flag-to-threshold mapping, and
// config manages the TOML configuration file.
package main
