package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	"github.com/backmassage/mov2mp4/internal/config"
	"github.com/backmassage/mov2mp4/internal/naming"
)

// Resolution-error sentinels. All of these fire before any subprocess is
// spawned and map to exit code 2.
var (
	ErrPathNotFound = errors.New("path not found")
	ErrNotAMovFile  = errors.New("not a .mov file")
)

// Request is one resolved conversion: an input file and the output path it
// will produce. Immutable once the batch is built.
type Request struct {
	Input  string
	Output string
}

// Batch is the ordered sequence of conversions for one run. Within a batch
// every output path is distinct from its input and from every other output;
// the collision resolver guarantees the latter.
type Batch []Request

// Resolve builds the batch for cfg.Input.
//
// A file input yields exactly one request (rejecting non-.mov extensions).
// A directory input yields one request per .mov child, lexicographically
// ordered; with Recursive set the whole subtree is walked in deterministic
// pre-order. An explicit output path is only valid in single-file mode.
func Resolve(cfg *config.Config) (Batch, error) {
	fi, err := os.Stat(cfg.Input)
	if err != nil {
		return nil, errors.Wrapf(ErrPathNotFound, "%s", cfg.Input)
	}

	if !fi.IsDir() {
		if !naming.IsMovFile(cfg.Input) {
			return nil, errors.Wrapf(ErrNotAMovFile, "%s", cfg.Input)
		}
		output := naming.OutputPath(cfg.Input)
		if cfg.Output != "" {
			output = naming.ForceMP4(cfg.Output)
		}
		return Batch{{Input: cfg.Input, Output: output}}, nil
	}

	if cfg.Output != "" {
		return nil, errors.Wrap(config.ErrIncompatibleOptions, "-o/--output cannot be used with a directory input")
	}

	files, err := discover(cfg.Input, cfg.Recursive)
	if err != nil {
		return nil, errors.Wrap(err, "discovering files")
	}

	resolver := naming.NewCollisionResolver()
	batch := make(Batch, 0, len(files))
	for _, f := range files {
		batch = append(batch, Request{
			Input:  f,
			Output: resolver.Resolve(f, naming.OutputPath(f)),
		})
	}
	return batch, nil
}

// discover enumerates .mov files under dir. Non-recursive mode lists direct
// children only (os.ReadDir is already name-sorted); recursive mode walks
// the subtree and sorts for a deterministic processing order.
func discover(dir string, recursive bool) ([]string, error) {
	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		var files []string
		for _, e := range entries {
			if e.IsDir() || !naming.IsMovFile(e.Name()) {
				continue
			}
			files = append(files, filepath.Join(dir, e.Name()))
		}
		return files, nil
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if naming.IsMovFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
