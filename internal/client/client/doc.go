// Package client is a thin gRPC client for the launcher service. It hides
// the wire types' transport errors behind a small set of sentinel errors
// the CLI can report to a human.
package client
