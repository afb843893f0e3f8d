package predictor

import (
	"bufio"
	"dgaintel/pkg/serrors"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Shape records which kind of input was supplied. It decides how results are
// shaped: unwrapped to a scalar for ShapeSingle, a sequence otherwise.
type Shape int

const (
	// shapeUnknown is the zero value and is always rejected.
	shapeUnknown Shape = iota
	// ShapeSingle is one domain string.
	ShapeSingle
	// ShapeMany is an ordered list of domain strings.
	ShapeMany
	// ShapeFile is a path to a line-delimited domain list.
	ShapeFile
)

// String implements fmt.Stringer.
func (s Shape) String() string {
	switch s {
	case ShapeSingle:
		return "single"
	case ShapeMany:
		return "many"
	case ShapeFile:
		return "file"
	default:
		return "unknown"
	}
}

// Input is the tagged union of accepted inputs. Build it with Single, Many or
// File; the variant is always explicit and never guessed from the shape of a
// string, so a domain that happens to match a file on disk is still treated
// as a domain.
type Input struct {
	shape   Shape
	domains []string
	path    string
}

// Single wraps one domain.
func Single(domain string) Input {
	return Input{shape: ShapeSingle, domains: []string{domain}}
}

// Many wraps an ordered list of domains. Order and duplicates are preserved.
func Many(domains []string) Input {
	return Input{shape: ShapeMany, domains: domains}
}

// File refers to a line-delimited domain list at path.
func File(path string) Input {
	return Input{shape: ShapeFile, path: path}
}

// FromValue builds an Input from a dynamically typed value: a string becomes
// Single, a []string or a []any holding only strings becomes Many. Any other
// value fails with serrors.ErrInvalidInputKind. File inputs are never
// produced here; use File explicitly.
func FromValue(v any) (Input, error) {
	switch val := v.(type) {
	case string:
		return Single(val), nil
	case []string:
		return Many(val), nil
	case []any:
		domains := make([]string, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return Input{}, serrors.With(serrors.ErrInvalidInputKind,
					"element %d is %T, expected a domain string", i, item)
			}
			domains[i] = s
		}

		return Many(domains), nil
	default:
		return Input{}, serrors.With(serrors.ErrInvalidInputKind,
			"unsupported input %T, expected a domain string or a list of domain strings", v)
	}
}

// Shape returns the input variant.
func (in Input) Shape() Shape {
	return in.shape
}

// Path returns the file path of a File input.
func (in Input) Path() string {
	return in.path
}

// Resolve returns the ordered domains held by the input, reading the file for
// File inputs.
func (in Input) Resolve() ([]string, error) {
	switch in.shape {
	case ShapeSingle:
		return []string{in.domains[0]}, nil
	case ShapeMany:
		out := make([]string, len(in.domains))
		copy(out, in.domains)

		return out, nil
	case ShapeFile:
		return ReadDomainList(in.path)
	default:
		return nil, serrors.With(serrors.ErrInvalidInputKind, "input kind is not set")
	}
}

// ReadDomainList reads a UTF-8 file holding one domain per line. Surrounding
// whitespace is trimmed and blank lines are skipped.
func ReadDomainList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, serrors.Wrap(serrors.ErrFileNotFound, err, "domain list %q not found", path)
		}

		return nil, fmt.Errorf("could not open domain list: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("could not stat domain list: %w", err)
	}
	if info.IsDir() {
		return nil, serrors.With(serrors.ErrFileNotFound, "domain list %q is a directory", path)
	}

	var domains []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		domains = append(domains, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not read domain list: %w", err)
	}

	return domains, nil
}
