package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ListJSONFiles returns the .json files directly inside dir, sorted by name.
func ListJSONFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".json") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// chooseFile lists the graph document files in the shell's directory and
// lets the user pick one by number. An empty path with a nil error means
// nothing was selected.
func (s *Shell) chooseFile() (string, error) {
	files, err := ListJSONFiles(s.dir)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		fmt.Fprintln(s.out, "No data files found.")
		return "", nil
	}

	fmt.Fprintln(s.out, "Available data files:")
	for i, file := range files {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, file)
	}

	choice, ok := s.prompt("File number: ")
	if !ok {
		return "", errInputClosed
	}
	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > len(files) {
		fmt.Fprintln(s.out, "Invalid choice.")
		return "", nil
	}
	return filepath.Join(s.dir, files[idx-1]), nil
}
