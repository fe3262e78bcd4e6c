package ports

import "framelink/internal/types"

type ReportPort interface {
	WriteFrameworks(path string, report types.FrameworkReport) error
	ReadExpected(path string) ([]string, error)
}
