package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/yenksp/paths"
)

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat indicates an unsupported output format.
var ErrUnknownFormat = errors.New("query: unknown output format")

const rule = "-----------------------------------------------------------"

// Document is the serialized form of a Report.
type Document struct {
	ID       string     `json:"id" yaml:"id"`
	Source   int        `json:"source" yaml:"source"`
	Sink     int        `json:"sink" yaml:"sink"`
	Error    string     `json:"error,omitempty" yaml:"error,omitempty"`
	Cached   bool       `json:"cached" yaml:"cached"`
	Elapsed  string     `json:"elapsed" yaml:"elapsed"`
	Paths    []PathView `json:"paths,omitempty" yaml:"paths,omitempty"`
	WorkDone []int      `json:"work_done,omitempty" yaml:"work_done,omitempty"`
}

// PathView is one ranked path of a Document.
type PathView struct {
	Rank  int   `json:"rank" yaml:"rank"`
	Nodes []int `json:"nodes" yaml:"nodes,flow"`
	Cost  int64 `json:"cost" yaml:"cost"`
}

// Document converts r to its serialized form.
func (r Report) Document() Document {
	d := Document{
		ID:      r.ID,
		Source:  r.Pair.Source,
		Sink:    r.Pair.Sink,
		Error:   r.Error,
		Cached:  r.Cached,
		Elapsed: r.Elapsed.String(),
	}
	if r.Result == nil {
		return d
	}
	for i, p := range r.Result.Paths {
		d.Paths = append(d.Paths, PathView{Rank: i + 1, Nodes: p, Cost: r.Result.Costs[i]})
	}
	d.WorkDone = r.Result.WorkDone

	return d
}

// Write renders reports to w in the given format.
func Write(w io.Writer, reports []Report, format string) error {
	switch strings.ToLower(format) {
	case FormatText, "":
		return writeText(w, reports)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(documents(reports))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(documents(reports)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func documents(reports []Report) []Document {
	docs := make([]Document, len(reports))
	for i, r := range reports {
		docs[i] = r.Document()
	}

	return docs
}

// writeText prints one block per query: a header, then every path with its
// rank and cost, then the per-worker work counts if any. A footer gives the
// total solve time of the batch in seconds.
func writeText(w io.Writer, reports []Report) error {
	var (
		sb    strings.Builder
		total time.Duration
	)
	for _, r := range reports {
		total += r.Elapsed
		fmt.Fprintf(&sb, "%s\nSource: %d, Sink: %d\n%s\n", rule, r.Pair.Source, r.Pair.Sink, rule)
		if r.Result == nil {
			fmt.Fprintf(&sb, "NO PATH: %s\n", r.Error)
			continue
		}
		for i, p := range r.Result.Paths {
			fmt.Fprintf(&sb, "k = %d\n%s\nCOST: %d\n", i+1, paths.String(p), r.Result.Costs[i])
		}
		for id, n := range r.Result.WorkDone {
			fmt.Fprintf(&sb, "WORKER %d || WORK DONE: %d\n", id, n)
		}
	}
	fmt.Fprintf(&sb, "\nExecution time: %f\n", total.Seconds())
	_, err := io.WriteString(w, sb.String())

	return err
}
