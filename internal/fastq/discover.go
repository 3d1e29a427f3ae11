package fastq

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// DiscoverOptions narrows which read files a run directory contributes.
type DiscoverOptions struct {
	PassOnly bool // keep only files under a fastq_pass directory
	GzOnly   bool // keep only gzipped files
}

func isReadFile(name string) bool {
	for _, ext := range []string{".fastq", ".fq", ".fastq.gz", ".fq.gz"} {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Discover walks dir and returns the read files to process, sorted so runs
// are deterministic regardless of filesystem order.
func Discover(dir string, opt DiscoverOptions) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isReadFile(d.Name()) {
			return nil
		}
		if opt.PassOnly && !strings.Contains(path, string(filepath.Separator)+"fastq_pass"+string(filepath.Separator)) {
			return nil
		}
		if opt.GzOnly && !strings.HasSuffix(path, ".gz") {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
