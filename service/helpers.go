package service

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/litvinov-da/library/data"
)

// objectStorage stores uploaded files and returns their public URL.
type objectStorage interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

// coverStorage returns the configured object storage.
func (s *service) coverStorage() (objectStorage, error) {
	if s.storage == nil {
		return nil, ErrStorageDisabled
	}
	return s.storage, nil
}

// detectMimeType reads a multipart file into memory and detects its content type.
func (s *service) detectMimeType(file multipart.File) ([]byte, *mimetype.MIME, error) {
	buffer, err := io.ReadAll(file)
	if err != nil {
		return nil, nil, err
	}
	return buffer, mimetype.Detect(buffer), nil
}

// objectKey builds a random storage key under scope that keeps the upload's extension.
func objectKey(scope string, filename string) (string, error) {
	randomBytes := make([]byte, 16)
	_, err := rand.Read(randomBytes)
	if err != nil {
		return "", err
	}
	name := strings.ToLower(base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes))
	return scope + "/" + name + strings.ToLower(filepath.Ext(filename)), nil
}

// background runs fn in a goroutine tracked by the service wait group and
// recovers from panics inside it.
func (s *service) background(fn func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if err := recover(); err != nil {
				s.logger.PrintError(fmt.Errorf("%s", err), nil)
			}
		}()
		fn()
	}()
}

// pageFilters builds list filters for the fixed-size catalog pages.
func pageFilters(page int, sort string, safeList ...string) data.Filters {
	return data.Filters{
		Page:         page,
		PageSize:     data.DefaultPageSize,
		Sort:         sort,
		SortSafeList: safeList,
	}
}
