//go:build !linux

package renamer

func renameNoReplace(src, dst string) error {
	return fallbackRename(src, dst)
}
