package http

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openapiYAML []byte

// LoadOpenAPI parses and validates the embedded API document.
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(openapiYAML)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// swaggerDoc serves a rendered document to the swagger UI.
type swaggerDoc struct {
	mu   sync.RWMutex
	json string
}

func (d *swaggerDoc) ReadDoc() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.json
}

func (d *swaggerDoc) set(doc string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.json = doc
}

var (
	registeredDoc = &swaggerDoc{}
	registerOnce  sync.Once
)

// registerSwagger publishes doc under the default swag instance name used by
// echo-swagger. swag panics on a second Register, so later calls only replace
// the served document.
func registerSwagger(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}

	registeredDoc.set(string(raw))
	registerOnce.Do(func() {
		swag.Register(swag.Name, registeredDoc)
	})
	return nil
}
