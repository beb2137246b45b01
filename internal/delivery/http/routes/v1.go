package routes

import (
	"log"

	"mes-workforce/internal/config"
	"mes-workforce/internal/database"
	v1 "mes-workforce/internal/delivery/http/routes/v1"
	"mes-workforce/internal/usecase"
	"mes-workforce/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, cache usecase.MatchCache, hub *ws.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, cache, hub, logger)
}
