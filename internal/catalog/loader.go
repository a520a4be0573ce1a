package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/TavernCrawl_Go/internal/logger"
	"github.com/osse101/TavernCrawl_Go/internal/validation"
)

// Loader reads catalog files, validates them against the catalog schema and
// caches parsed results keyed by path. A cached entry is reused only while
// the file content hash is unchanged.
type Loader interface {
	Load(ctx context.Context, path string) (*Catalog, error)
}

type cachedCatalog struct {
	hash    string
	catalog *Catalog
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
	cache           *lru.Cache[string, *cachedCatalog]
}

// NewLoader creates a Loader holding at most cacheSize parsed catalogs
func NewLoader(cacheSize int) (Loader, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, *cachedCatalog](cacheSize)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateCacheFailed, err)
	}

	schemas, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateCacheFailed, err)
	}

	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(schemas),
		cache:           cache,
	}, nil
}

// Load returns the catalog at path, or the embedded default when path is empty
func (l *catalogLoader) Load(ctx context.Context, path string) (*Catalog, error) {
	log := logger.FromContext(ctx)

	if path == "" {
		log.Debug(LogMsgUsingDefaultCat)
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}

	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	if entry, ok := l.cache.Get(path); ok && entry.hash == hash {
		log.Debug(LogMsgCatalogCacheHit, "path", path)
		return entry.catalog, nil
	}

	if err := l.schemaValidator.ValidateBytes(data, SchemaFileName); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailedFmt, path, err)
	}

	cat, err := Parse(data)
	if err != nil {
		return nil, err
	}

	l.cache.Add(path, &cachedCatalog{hash: hash, catalog: cat})
	log.Info(LogMsgCatalogLoaded, "path", path, "version", cat.Version, "drinks", len(cat.Drinks))

	return cat, nil
}
