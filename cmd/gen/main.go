// Command gen generates the typed GORM query helpers for the persistence models.
package main

import (
	"contacts/internal/infra/persistence/postgres"

	"gorm.io/gen"
)

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(postgres.Models()...)

	g.Execute()
}
