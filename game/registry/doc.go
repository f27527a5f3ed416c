// Package registry tracks the live rooms of a NetPong server.
//
// The registry lazily creates a room (and starts its simulation) on the
// first Join of an id and evicts it as soon as its last connection
// detaches, so no simulation goroutine ever outlives its audience. Join is
// atomic under concurrent first-connections to the same id.
package registry
