package main

import (
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/app"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/configs"
)

func main() {
	config := configs.LoadConfig()
	application := app.NewPhotoLikeApplication(config)
	if err := application.Start(); err != nil {
		return
	}
}
