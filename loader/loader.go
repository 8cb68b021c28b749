package loader

import (
	"context"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/wirvsvirus/measures-dashboard/schema"
)

const (
	logPrefix = "loader"
)

var (
	ErrDataUnavailable = fmt.Errorf("data set unavailable")
	ErrVersionChanged  = fmt.Errorf("data set changed while reading")
)

// FileLoader reads case and action records from CSV files on disk. Files
// are read fresh on every call.
type FileLoader struct {
	CasesPath   string
	ActionsPath string
	Encoding    Encoding
}

// NewFileLoader returns a loader for the given case and action files.
func NewFileLoader(casesPath, actionsPath string, encoding Encoding) *FileLoader {
	return &FileLoader{
		CasesPath:   casesPath,
		ActionsPath: actionsPath,
		Encoding:    encoding,
	}
}

func (l *FileLoader) LoadCases(ctx context.Context) ([]schema.CaseRecord, error) {
	r, err := l.open(ctx, l.CasesPath)
	if err != nil {
		return nil, err
	}
	return ReadCases(r)
}

func (l *FileLoader) LoadActions(ctx context.Context) ([]schema.ActionRecord, error) {
	r, err := l.open(ctx, l.ActionsPath)
	if err != nil {
		return nil, err
	}
	return ReadActions(r)
}

// Version returns a digest over the content of both files, so that a
// changed file yields a new version.
func (l *FileLoader) Version(ctx context.Context) (string, error) {
	h := sha256.New()
	for _, p := range []string{l.CasesPath, l.ActionsPath} {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		f, err := os.Open(p)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrDataUnavailable, err)
		}
		_, err = io.Copy(h, f)
		f.Close()
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrDataUnavailable, err)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Load reads both files once and returns their records only if the content
// still matches version.
func (l *FileLoader) Load(ctx context.Context, version string) ([]schema.CaseRecord, []schema.ActionRecord, error) {
	casesData, err := l.read(ctx, l.CasesPath)
	if err != nil {
		return nil, nil, err
	}
	actionsData, err := l.read(ctx, l.ActionsPath)
	if err != nil {
		return nil, nil, err
	}

	h := sha256.New()
	h.Write(casesData)
	h.Write(actionsData)
	if hex.EncodeToString(h.Sum(nil)) != version {
		return nil, nil, fmt.Errorf("%w: %s", ErrVersionChanged, version)
	}

	r, err := l.decode(casesData)
	if err != nil {
		return nil, nil, err
	}
	cases, err := ReadCases(r)
	if err != nil {
		return nil, nil, err
	}

	r, err = l.decode(actionsData)
	if err != nil {
		return nil, nil, err
	}
	actions, err := ReadActions(r)
	if err != nil {
		return nil, nil, err
	}
	return cases, actions, nil
}

func (l *FileLoader) open(ctx context.Context, path string) (io.Reader, error) {
	data, err := l.read(ctx, path)
	if err != nil {
		return nil, err
	}
	return l.decode(data)
}

func (l *FileLoader) read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "file": path, "error": err}).Error("read data set")
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, err)
	}
	return data, nil
}

func (l *FileLoader) decode(data []byte) (io.Reader, error) {
	text, err := Decode(data, l.Encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, err)
	}
	return strings.NewReader(text), nil
}

// table is a CSV file with header-based column lookup.
type table struct {
	columns map[string]int
	rows    [][]string
}

func readTable(r io.Reader) (*table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrDataUnavailable)
	}

	columns := make(map[string]int)
	for i, name := range records[0] {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, ok := columns[name]; !ok {
			columns[name] = i
		}
	}

	return &table{
		columns: columns,
		rows:    records[1:],
	}, nil
}

// column returns the index of the first header matching one of the names.
func (t *table) column(required bool, names ...string) (int, error) {
	for _, n := range names {
		if i, ok := t.columns[n]; ok {
			return i, nil
		}
	}
	if required {
		return -1, fmt.Errorf("%w: missing column %s", ErrDataUnavailable, names[0])
	}
	return -1, nil
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return normalizeText(row[i])
}
