package server

import "net"

// Server runs the configured transports until the process is asked to stop.
type Server interface {
	// RunServer blocks until SIGTERM, SIGINT or SIGQUIT and then stops every
	// transport.
	RunServer()

	// Shutdown stops every transport that was started.
	Shutdown()
}

// transport is one listening endpoint managed by [server]: the REST API or
// the gRPC health service.
type transport interface {
	name() string
	listen() error
	addr() net.Addr
	serve()
	shutdown()
}
