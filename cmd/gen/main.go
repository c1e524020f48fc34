package main

import (
	"graze/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.OfferModel{},
		model.VendorModel{},
		model.OfferSubscriptionModel{},
		model.PushEndpointModel{},
		model.NotificationDedupModel{},
		model.VendorMetricsModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
