// SPDX-License-Identifier: MIT

package dataio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/sbinet/npyio"
)

// TraceFileName returns "<dir>/<algorithm>--<timestamp>.npy".
func TraceFileName(dir, algorithm string, at time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s--%s.npy", algorithm, at.Format("2006-01-02T15-04-05")))
}

// WriteTrace encodes trace as a 1-D float64 .npy array.
func WriteTrace(w io.Writer, trace []float64) error {
	if trace == nil {
		trace = []float64{}
	}

	return npyio.Write(w, slices.Clone(trace))
}

// ReadTrace decodes a 1-D float64 .npy array.
func ReadTrace(r io.Reader) ([]float64, error) {
	var trace []float64
	if err := npyio.Read(r, &trace); err != nil {
		return nil, err
	}

	return trace, nil
}

// SaveTrace writes trace to path, creating parent directories.
func SaveTrace(path string, trace []float64) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteTrace(f, trace); err != nil {
		f.Close()
		return fmt.Errorf("write trace %s: %w", path, err)
	}

	return f.Close()
}
