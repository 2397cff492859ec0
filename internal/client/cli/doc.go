// Package cli is the operator command-line client of the launcher backend.
//
// Every subcommand maps onto one gRPC call:
//   - auth <username>: authenticate, prompting for the password unless --password is given
//   - token: fetch the encrypted server token
//   - join <accessToken> <uuid> <serverId>: bind a session to a server
//   - has-joined <username> <serverId>: verify a joined session
//   - profile <uuid> and profiles <names...>: look up identities
//
// The server address comes from --addr.
package cli
