//go:build !unix

package store

// Without flock the store is only safe for a single process.
func lockDir(dir string, exclusive bool) (func(), error) {
	return func() {}, nil
}
