// Package server runs the HTTP transport of the note server, including
// startup, signal handling and graceful shutdown.
package server
