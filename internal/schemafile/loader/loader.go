package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-formstate/pkg/schemafile"
)

// Loader implements schemafile.Loader by delegating to file, fs.FS, or HTTP
// strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
	maxSize   int64
}

var _ schemafile.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options schemafile.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	maxSize := options.MaxDocumentSize
	if maxSize <= 0 {
		maxSize = DefaultMaxDocumentSize
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
		maxSize:   maxSize,
	}
}

// Load fetches a document from the provided source.
func (l *Loader) Load(ctx context.Context, src schemafile.Source) (schemafile.Document, error) {
	if src == nil {
		return schemafile.Document{}, errors.New("schemafile loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case schemafile.SourceKindFile:
		data, err = loadFile(ctx, src.Location(), l.maxSize)
	case schemafile.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location(), l.maxSize)
	case schemafile.SourceKindURL:
		if !l.allowHTTP {
			return schemafile.Document{}, errors.New("schemafile loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout, l.maxSize)
	default:
		err = fmt.Errorf("schemafile loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return schemafile.Document{}, err
	}

	return schemafile.NewDocument(src, data)
}
