package interpreter

import (
	"fmt"
	"io"
	"os"
)

// LoadRoute reads the instruction file at path. The file is read in full and
// closed before parsing starts.
func LoadRoute(path string) (*Route, error) {
	data, err := readAll(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, string(data))
}

func readAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open route: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read route %s: %w", path, err)
	}
	return data, nil
}
