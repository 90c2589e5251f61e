package main

import (
	"interest/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ProductModel{},
		model.ProductMetaModel{},
		model.CustomerModel{},
		model.RelationshipModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
