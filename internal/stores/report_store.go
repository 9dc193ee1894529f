package stores

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"nexus-exporter/internal/shared/filestorages"
)

var ErrNoReport = errors.New("no report has been generated yet")

// MetricsReportStore persists the latest rendered exposition document so it
// can be served without re-scanning the log directory. Saves are atomic;
// only one document (the newest) is kept.
//
//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type MetricsReportStore interface {
	Save(ctx context.Context, document []byte) error
	Latest(ctx context.Context) ([]byte, error)
}

type metricsReportStore struct {
	fileStorage filestorages.FileStorage
	fileName    string
}

func NewMetricsReportStore(fileStorage filestorages.FileStorage, fileName string) MetricsReportStore {
	return &metricsReportStore{fileStorage: fileStorage, fileName: fileName}
}

func (s *metricsReportStore) Save(ctx context.Context, document []byte) error {
	if err := s.fileStorage.Put(ctx, s.fileName, bytes.NewReader(document)); err != nil {
		return fmt.Errorf("failed to put report: %w", err)
	}
	return nil
}

func (s *metricsReportStore) Latest(ctx context.Context) ([]byte, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.fileName)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrNoReport
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	defer readCloser.Close()

	document, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	return document, nil
}
