package app

import (
	"encoding/json"
	"os"

	"go.trai.ch/histo/internal/core/domain"
	"go.trai.ch/zerr"
)

// MarshalReport renders result as indented JSON with a trailing newline.
func MarshalReport(result *domain.Result) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// WriteReport writes result as JSON to path.
func WriteReport(path string, result *domain.Result) error {
	data, err := MarshalReport(result)
	if err == nil {
		err = os.WriteFile(path, data, domain.FilePerm)
	}
	if err != nil {
		return zerr.With(domain.Wrap(domain.ErrReportWriteFailed, err), "path", path)
	}
	return nil
}
