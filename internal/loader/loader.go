/*
File    : solc/internal/loader/loader.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package loader reads Sol source files from disk for the CLI driver.
Adapted from the teacher module's file handle wrapper: instead of
exposing a runtime-visible file object to guest scripts, it is a plain
Go-side helper the driver calls before handing text to the compiler.
*/
package loader

import (
	"fmt"
	"os"
	"path/filepath"
)

// Source is a Sol source file read from disk, along with its absolute
// path and containing directory. The CLI driver reads only Contents;
// nothing injects AbsPath or Dir into the compiled output.
type Source struct {
	Path     string
	AbsPath  string
	Dir      string
	Contents string
}

// Read loads path and resolves its absolute path and containing
// directory.
func Read(path string) (*Source, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: could not read %q: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("loader: could not resolve %q: %w", path, err)
	}

	return &Source{
		Path:     path,
		AbsPath:  abs,
		Dir:      filepath.Dir(abs),
		Contents: string(contents),
	}, nil
}

// Exists reports whether path names a file that can be read.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
