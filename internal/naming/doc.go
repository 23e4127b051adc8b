// Package naming splits media file and directory names into a search title
// and an optional release year.
//
// A name that already carries a parenthesized four digit year, such as
// "Alien (1979).mkv", is considered canonical and is left alone by the
// organizer. Known container extensions are split off before matching so the
// title never includes them; any other dot is treated as part of the title so
// directories like "Dr. Strangelove" survive intact.
package naming
