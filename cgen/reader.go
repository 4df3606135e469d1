package cgen

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"regexp"
	"strconv"
	"strings"
)

var errNotFound = errors.New("cgen: array not found")

// ReadArray scans C source from r for the initializer of the array named
// name and returns its elements.
func ReadArray(r io.Reader, name string) ([]uint32, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\s*\[[^\]]*\]\s*=\s*\{([^}]*)\}`)
	m := re.FindSubmatch(b)
	if m == nil {
		return nil, errNotFound
	}

	body := strings.TrimSpace(string(m[1]))
	if body == "" {
		return []uint32{}, nil
	}

	fields := strings.Split(body, ",")
	values := make([]uint32, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 0, 32)
		if err != nil {
			return nil, fmt.Errorf("cgen: %s: %w", name, err)
		}
		values = append(values, uint32(v))
	}

	return values, nil
}
