// Package jobs serves job postings from an embedded demo catalog or, when
// configured, the JSearch API.
package jobs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/careerlaunch/internal/types"
)

//go:embed catalog.json
var catalogJSON []byte

//go:embed catalog_schema.json
var catalogSchemaJSON []byte

var (
	catalogOnce sync.Once
	catalogJobs []types.JobPosting
	catalogErr  error
)

// Catalog returns the embedded demo postings. The catalog is validated
// against its schema and decoded once; postedDate is stamped at load time
// so listings always look current. Callers receive a fresh copy on each
// call since scoring mutates postings.
func Catalog() ([]types.JobPosting, error) {
	catalogOnce.Do(loadCatalog)
	if catalogErr != nil {
		return nil, catalogErr
	}
	out := make([]types.JobPosting, len(catalogJobs))
	copy(out, catalogJobs)
	return out, nil
}

func loadCatalog() {
	schemaLoader := gojsonschema.NewBytesLoader(catalogSchemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(catalogJSON)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		catalogErr = fmt.Errorf("failed to validate job catalog: %w", err)
		return
	}
	if !result.Valid() {
		first := result.Errors()[0]
		catalogErr = fmt.Errorf("invalid job catalog: %s: %s", first.Field(), first.Description())
		return
	}

	var doc struct {
		Jobs []types.JobPosting `json:"jobs"`
	}
	if err := json.Unmarshal(catalogJSON, &doc); err != nil {
		catalogErr = fmt.Errorf("failed to decode job catalog: %w", err)
		return
	}

	posted := time.Now().UTC()
	for i := range doc.Jobs {
		doc.Jobs[i].PostedDate = posted
	}
	catalogJobs = doc.Jobs
}
