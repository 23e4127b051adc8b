package naming

import (
	"path/filepath"
	"regexp"
	"strings"

	"moviemanager/internal/textutil"
)

// filenamePattern captures a title made of letters, digits, spaces and a fixed
// punctuation set, then an optional roman numeral disambiguator and an
// optional "(YYYY)" year.
var filenamePattern = regexp.MustCompile(
	`^(?P<title>[\p{L}\p{M}\p{N}_\s,!.\-&':]*)(?:\([IVX]*\)\s+)?(?P<year>\(\d{4}\))?`,
)

var (
	titleGroup = filenamePattern.SubexpIndex("title")
	yearGroup  = filenamePattern.SubexpIndex("year")
)

var mediaExtensions = map[string]struct{}{
	".avi":  {},
	".divx": {},
	".flv":  {},
	".iso":  {},
	".m2ts": {},
	".m4v":  {},
	".mkv":  {},
	".mov":  {},
	".mp4":  {},
	".mpeg": {},
	".mpg":  {},
	".ogm":  {},
	".ts":   {},
	".vob":  {},
	".webm": {},
	".wmv":  {},
}

// Match is the result of parsing a single name.
type Match struct {
	// Title is the trimmed title portion of the name.
	Title string
	// Year is the parenthesized year, e.g. "(1979)", or empty.
	Year string
	// Ext is the split-off media extension including its dot, or empty.
	Ext string
}

// HasYear reports whether the name already carries a release year.
func (m Match) HasYear() bool {
	return m.Year != ""
}

// SearchKey returns the string to send to a title lookup.
func (m Match) SearchKey() string {
	return SearchKey(m.Title)
}

// SplitExt separates a known media extension from name. Names without one
// are returned whole with an empty extension.
func SplitExt(name string) (string, string) {
	ext := filepath.Ext(name)
	if ext == "" {
		return name, ""
	}
	if _, ok := mediaExtensions[strings.ToLower(ext)]; !ok {
		return name, ""
	}
	return strings.TrimSuffix(name, ext), ext
}

// Parse matches a file name against the filename pattern after splitting off
// a known media extension. The boolean is false when no usable title could be
// extracted.
func Parse(name string) (Match, bool) {
	stem, ext := SplitExt(name)
	return parseStem(stem, ext)
}

// ParseDir is Parse for directory names, which never carry an extension.
func ParseDir(name string) (Match, bool) {
	return parseStem(name, "")
}

func parseStem(stem, ext string) (Match, bool) {
	groups := filenamePattern.FindStringSubmatch(stem)
	if groups == nil {
		return Match{}, false
	}
	title := strings.TrimSpace(groups[titleGroup])
	if title == "" {
		return Match{}, false
	}
	return Match{
		Title: title,
		Year:  groups[yearGroup],
		Ext:   ext,
	}, true
}

// SearchKey turns dot and underscore separators into spaces, folds whitespace
// and normalizes to NFC.
func SearchKey(title string) string {
	replaced := strings.Map(func(r rune) rune {
		if r == '.' || r == '_' {
			return ' '
		}
		return r
	}, title)
	return textutil.NFC(textutil.FoldSpace(replaced))
}
