// Package source opens resume documents for upload, either from the local
// disk or from S3-compatible object storage (AWS S3, MinIO).
//
// References starting with s3:// are fetched from object storage; anything
// else is a local path.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const s3Scheme = "s3://"

var ErrInvalidRef = errors.New("invalid document reference")

// Document is an open resume ready for upload. The caller closes Body.
type Document struct {
	Name string
	Body io.ReadCloser
}

type Opener interface {
	Open(ctx context.Context, ref string) (*Document, error)
}

// Local opens files from disk.
type Local struct{}

func (Local) Open(_ context.Context, path string) (*Document, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrInvalidRef
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Document{Name: filepath.Base(path), Body: f}, nil
}

// Resolver dispatches a reference to the local or S3 opener. The S3 opener
// is built on first use so plain local uploads never touch AWS config.
type Resolver struct {
	local Opener
	newS3 func(ctx context.Context) (Opener, error)

	mu sync.Mutex
	s3 Opener
}

func NewResolver(cfg S3Config) *Resolver {
	return &Resolver{
		local: Local{},
		newS3: func(ctx context.Context) (Opener, error) { return NewS3(ctx, cfg) },
	}
}

func (r *Resolver) Open(ctx context.Context, ref string) (*Document, error) {
	if !strings.HasPrefix(ref, s3Scheme) {
		return r.local.Open(ctx, ref)
	}

	r.mu.Lock()
	if r.s3 == nil {
		s3o, err := r.newS3(ctx)
		if err != nil {
			r.mu.Unlock()
			return nil, fmt.Errorf("init s3: %w", err)
		}
		r.s3 = s3o
	}
	s3o := r.s3
	r.mu.Unlock()

	return s3o.Open(ctx, ref)
}
