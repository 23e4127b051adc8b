// Package tmdb provides the minimal TMDB API client used for title lookups.
//
// It authenticates requests with an API key and exposes movie, TV, and multi
// search. Search implements lookup.Searcher by routing a kind to the matching
// endpoint and converting results into media candidates. Options allow tests
// to supply custom HTTP clients without modifying production code.
package tmdb
