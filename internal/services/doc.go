// Package services implements clients for the external APIs the workflow
// talks to: a typed Spotify client ([SpotifyService]) covering playlist
// reads, catalog search, and playlist writes, and a raw passthrough client
// ([RawAPIService]) for everything else.
//
// Authentication supports two strategies behind one [Service.Authenticate]
// entry point: the three-legged authorization-code flow (needed to modify
// playlists on behalf of a user) and the two-legged client-credentials flow
// for machine-to-machine access.
package services
