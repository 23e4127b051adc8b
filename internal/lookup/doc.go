// Package lookup resolves a search title to database candidates of a
// requested kind.
//
// Providers (imdb, tmdb) implement Searcher; Client applies the filtering
// rules shared by every provider. The client is constructed explicitly and
// handed to the organizer so tests can substitute a fake Searcher.
package lookup
