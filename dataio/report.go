// SPDX-License-Identifier: MIT

package dataio

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/cclust/search"
)

// Report is the persisted summary of one run.
type Report struct {
	RunID                 string    `msgpack:"run_id"`
	Algorithm             string    `msgpack:"algorithm"`
	Seed                  int64     `msgpack:"seed"`
	Clusters              int       `msgpack:"clusters"`
	Points                int       `msgpack:"points"`
	Constraints           int       `msgpack:"constraints"`
	GlobalClusterDistance float64   `msgpack:"global_cluster_distance"`
	Infeasibility         int       `msgpack:"infeasibility"`
	Fitness               float64   `msgpack:"fitness"`
	Lambda                float64   `msgpack:"lambda"`
	Evaluations           int       `msgpack:"evaluations"`
	ElapsedSeconds        float64   `msgpack:"elapsed_seconds"`
	Assignment            []int     `msgpack:"assignment"`
	Trace                 []float64 `msgpack:"trace"`
	StartedAt             time.Time `msgpack:"started_at"`
}

// NewReport summarizes res under a fresh run id.
func NewReport(res search.Result, seed int64, startedAt time.Time, elapsed time.Duration) Report {
	best := res.Best
	p := best.Problem()

	return Report{
		RunID:                 uuid.NewString(),
		Algorithm:             res.Algorithm.String(),
		Seed:                  seed,
		Clusters:              p.K(),
		Points:                p.N(),
		Constraints:           p.Constraints().Len(),
		GlobalClusterDistance: best.GlobalClusterDistance(),
		Infeasibility:         best.Infeasibility(),
		Fitness:               best.Fitness(),
		Lambda:                best.Lambda(),
		Evaluations:           res.Evaluations,
		ElapsedSeconds:        elapsed.Seconds(),
		Assignment:            best.Assignment(),
		Trace:                 res.Trace,
		StartedAt:             startedAt,
	}
}

// WriteReport encodes r with MessagePack.
func WriteReport(w io.Writer, r Report) error {
	return msgpack.NewEncoder(w).Encode(&r)
}

// ReadReport decodes a MessagePack report.
func ReadReport(rd io.Reader) (Report, error) {
	var r Report
	err := msgpack.NewDecoder(rd).Decode(&r)

	return r, err
}

// SaveReport writes r to path.
func SaveReport(path string, r Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteReport(f, r); err != nil {
		f.Close()
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return f.Close()
}
