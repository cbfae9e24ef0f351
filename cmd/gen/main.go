package main

import (
	"pushrelay/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.DeviceTokenModel{},
		model.NotificationModel{},
		model.DeliveryLogModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/store/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
