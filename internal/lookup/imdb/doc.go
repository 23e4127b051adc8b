// Package imdb queries the public IMDb suggestion endpoint used by the IMDb
// search box. It needs no API key and reports the fine-grained title types
// (TV mini series, video game, TV episode) that moviemanager filters on.
package imdb
