package memstore

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed schemas/*.json
var schemasFS embed.FS

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	// Сначала регистрируем все схемы как ресурсы, чтобы работали `$ref`.
	err := fs.WalkDir(schemasFS, "schemas", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			file, err := schemasFS.Open(path)
			if err != nil {
				return err
			}
			defer file.Close()
			if err := compiler.AddResource(path, file); err != nil {
				return fmt.Errorf("failed to add schema resource %s: %w", path, err)
			}
		}
		return nil
	})
	if err != nil {
		panic(fmt.Sprintf("error walking and adding schema resources: %v", err))
	}

	// Снова обходим для компиляции и регистрации.
	err = fs.WalkDir(schemasFS, "schemas", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			schema, err := compiler.Compile(path)
			if err != nil {
				return fmt.Errorf("could not compile schema %s: %w", path, err)
			}
			compiledSchemas[generateKeyFromPath(path)] = schema
		}
		return nil
	})
	if err != nil {
		panic(fmt.Sprintf("error walking and compiling schemas: %v", err))
	}
}

// generateKeyFromPath преобразует путь вида "schemas/listing-seed.json"
// в ключ вида "ListingSeed".
func generateKeyFromPath(path string) string {
	trimmed := strings.TrimPrefix(path, "schemas/")
	trimmed = strings.TrimSuffix(trimmed, ".json")

	caser := cases.Title(language.English)
	parts := strings.Split(trimmed, "-")
	for i, p := range parts {
		parts[i] = caser.String(p)
	}
	return strings.Join(parts, "")
}

// SchemaForKey возвращает скомпилированную схему по ключу.
func SchemaForKey(key string) (*jsonschema.Schema, error) {
	schema, ok := compiledSchemas[key]
	if !ok {
		return nil, fmt.Errorf("schema %q is not registered", key)
	}
	return schema, nil
}
