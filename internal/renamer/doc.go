// Package renamer moves a directory entry to its canonical name without ever
// replacing an existing path.
//
// On Linux the move is a single renameat2(RENAME_NOREPLACE) call, so a file
// appearing between the check and the move cannot be clobbered. Filesystems
// without RENAME_NOREPLACE, and other platforms, fall back to an Lstat check
// followed by os.Rename.
package renamer
