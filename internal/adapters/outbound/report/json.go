// Package report serializes analysis results for downstream consumers.
package report

import (
	"encoding/json"

	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/domain"
)

// JSON renders any result value with stable, indented field output.
func JSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

// BatchJSON renders a full batch result.
func BatchJSON(batch *domain.BatchResult) (string, error) {
	return JSON(batch)
}
