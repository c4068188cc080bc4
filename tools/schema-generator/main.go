// Regenerates the embedded JSON Schema from the Config struct. Run via
// go:generate from the config package.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/juicer149/dev-bootstrap/config"
)

const outputPath = "schema/bootstrap.embedded.schema.json"

func main() {
	data, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("generating schema: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		log.Fatalf("creating schema directory: %v", err)
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		log.Fatalf("writing %s: %v", outputPath, err)
	}

	log.Printf("wrote %s", outputPath)
}
