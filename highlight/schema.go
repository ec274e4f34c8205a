// Copyright © 2026 The mpvedit authors

package highlight

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidAsset is returned when an asset does not match its schema.
var ErrInvalidAsset = errors.New("invalid asset")

var (
	//go:embed schema/languages.schema.json
	languagesSchemaJSON string
	//go:embed schema/grammar.schema.json
	grammarSchemaJSON string
	//go:embed schema/theme.schema.json
	themeSchemaJSON string
)

var (
	languagesSchema = compileSchema(languagesSchemaJSON)
	grammarSchema   = compileSchema(grammarSchemaJSON)
	themeSchema     = compileSchema(themeSchemaJSON)
)

func compileSchema(src string) func() (*gojsonschema.Schema, error) {
	return sync.OnceValues(func() (*gojsonschema.Schema, error) {
		return gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	})
}

func validate(schema func() (*gojsonschema.Schema, error), data []byte) error {
	s, err := schema()
	if err != nil {
		return fmt.Errorf("schema error: %w", err)
	}
	res, err := s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAsset, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.Field()+": "+e.Description())
	}
	return fmt.Errorf("%w: %s", ErrInvalidAsset, strings.Join(msgs, "; "))
}
