package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/selfprint/internal/model"
)

const indexFile = "_index.yaml"

// ReportStore persists and retrieves verification verdicts.
type ReportStore interface {
	SaveVerdicts(dir m.Path, verdicts []m.Verdict) error
	LoadVerdicts(dir m.Path) ([]m.Verdict, error)
	RegenerateIndex(dir m.Path) error
}

// LocalReportStore writes one YAML file per verdict plus an _index.yaml
// summary. A file is named after the verdict's path and mode, so a later run
// over the same file replaces the earlier verdict.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

type verdictYAML struct {
	Path          string `yaml:"path"`
	Hash          string `yaml:"hash"`
	Mode          string `yaml:"mode"`
	Match         bool   `yaml:"match"`
	ExitCode      int    `yaml:"exit_code"`
	FirstDiffLine int    `yaml:"first_diff_line,omitempty"`
	SourceBytes   int    `yaml:"source_bytes"`
	OutputBytes   int    `yaml:"output_bytes"`
	Diff          string `yaml:"diff,omitempty"`
	Err           string `yaml:"error,omitempty"`
}

type indexEntry struct {
	Total   int      `yaml:"total"`
	Matched int      `yaml:"matched"`
	Failed  int      `yaml:"failed"`
	Reports []string `yaml:"reports"`
}

// SaveVerdicts writes every verdict into dir, creating it when needed.
func (rs *LocalReportStore) SaveVerdicts(dir m.Path, verdicts []m.Verdict) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	for _, v := range verdicts {
		data, err := yaml.Marshal(toVerdictYAML(v))
		if err != nil {
			return fmt.Errorf("marshal verdict for %s: %w", v.Path, err)
		}

		name := rs.computeReportHash(v) + ".yaml"
		if err := os.WriteFile(filepath.Join(string(dir), name), data, 0o600); err != nil {
			return fmt.Errorf("write verdict for %s: %w", v.Path, err)
		}
	}

	return nil
}

// LoadVerdicts reads every verdict file from dir, sorted by path and mode.
func (rs *LocalReportStore) LoadVerdicts(dir m.Path) ([]m.Verdict, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, err
	}

	var verdicts []m.Verdict

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == indexFile || !strings.HasSuffix(name, ".yaml") {
			continue
		}

		// #nosec G304 - file lives in the reports directory
		data, err := os.ReadFile(filepath.Join(string(dir), name))
		if err != nil {
			return nil, err
		}

		var decoded verdictYAML
		if err := yaml.Unmarshal(data, &decoded); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}

		verdicts = append(verdicts, fromVerdictYAML(decoded))
	}

	sort.Slice(verdicts, func(i, j int) bool {
		if verdicts[i].Path != verdicts[j].Path {
			return verdicts[i].Path < verdicts[j].Path
		}

		return verdicts[i].Mode < verdicts[j].Mode
	})

	return verdicts, nil
}

// RegenerateIndex summarises the verdicts stored in dir into _index.yaml.
func (rs *LocalReportStore) RegenerateIndex(dir m.Path) error {
	verdicts, err := rs.LoadVerdicts(dir)
	if err != nil {
		return err
	}

	idx := indexEntry{Total: len(verdicts), Reports: []string{}}

	for _, v := range verdicts {
		if v.OK() {
			idx.Matched++
		} else {
			idx.Failed++
		}

		idx.Reports = append(idx.Reports, rs.computeReportHash(v)+".yaml")
	}

	data, err := yaml.Marshal(idx)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(string(dir), indexFile), data, 0o600)
}

// computeReportHash keys a verdict by path and mode. The source hash stays
// out of the key.
func (rs *LocalReportStore) computeReportHash(v m.Verdict) string {
	sum := sha256.Sum256([]byte(string(v.Path) + "\x00" + string(v.Mode)))

	return fmt.Sprintf("%x", sum[:8])
}

func toVerdictYAML(v m.Verdict) verdictYAML {
	out := verdictYAML{
		Path:          string(v.Path),
		Hash:          v.Hash,
		Mode:          string(v.Mode),
		Match:         v.Match,
		ExitCode:      v.ExitCode,
		FirstDiffLine: v.FirstDiffLine,
		SourceBytes:   v.SourceBytes,
		OutputBytes:   v.OutputBytes,
		Diff:          v.Diff,
	}
	if v.Err != nil {
		out.Err = v.Err.Error()
	}

	return out
}

func fromVerdictYAML(in verdictYAML) m.Verdict {
	v := m.Verdict{
		Path:          m.Path(in.Path),
		Hash:          in.Hash,
		Mode:          m.VerifyMode(in.Mode),
		Match:         in.Match,
		ExitCode:      in.ExitCode,
		FirstDiffLine: in.FirstDiffLine,
		SourceBytes:   in.SourceBytes,
		OutputBytes:   in.OutputBytes,
		Diff:          in.Diff,
	}
	if in.Err != "" {
		v.Err = errors.New(in.Err)
	}

	return v
}
