package document

import (
	"context"
	"io"
)

type DocumentService interface {
	Upload(ctx context.Context, employeeID string, file io.Reader, filename string, contentType string, size int64) (DocumentResponse, error)
	List(ctx context.Context, employeeID *string) ([]DocumentResponse, error)
	Delete(ctx context.Context, id string) error
}
