// Command server runs the fileops HTTP host.
//
// Configuration comes from the environment (PORT, HOST, LOG_LEVEL,
// LOG_DEV), with -port and -host flags as overrides. The process shuts
// down gracefully on SIGINT or SIGTERM.
package main
