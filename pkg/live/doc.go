// Package live streams observable changes to connected clients over
// WebSocket. A Publisher exposes named observables; each connection receives
// the current value of every exposed observable on connect, then one update
// frame per change for as long as the connection lasts.
package live
