package main

import (
	"storefront/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for every persisted model. Run from the
// repository root.
func main() {
	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/gormstore/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(model.All()...)

	gen.Execute()
}
