// Package server runs the session gateway's HTTP server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown on SIGINT, SIGTERM and SIGQUIT.
package server
