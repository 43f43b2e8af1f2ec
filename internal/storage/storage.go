package storage

import (
	"context"
	"io"
	"time"
)

// BlobStore guarda o conteúdo dos documentos. A linha no banco referencia
// o blob pela chave; remover um documento exige remover os dois.
type BlobStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string, expire time.Duration) (string, error)
}
