//go:build !unix

package renamer

func checkWritable(string) error {
	return nil
}
