// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/paperstat/paperstat/pkg/types"
)

const exportLimit = 100000

// ExportYAML writes matching records to w as a YAML list. It supports the
// same filters as Query.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer, opts QueryOptions) error {
	records, err := s.exportRecords(ctx, opts)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ExportJSON writes matching records to w as an indented JSON array. It
// supports the same filters as Query.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer, opts QueryOptions) error {
	records, err := s.exportRecords(ctx, opts)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func (s *Store) exportRecords(ctx context.Context, opts QueryOptions) ([]types.PaperRecord, error) {
	if opts.MaxResults <= 0 {
		opts.MaxResults = exportLimit
	}
	records, err := s.Query(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	if records == nil {
		records = []types.PaperRecord{}
	}
	return records, nil
}
