package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/VicMent/kermisfuif-sponsor-api/internal/api"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/config"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/db"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/logger"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/repository/dao"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	// All state lives in an in-memory database: a restart starts over
	// from the seed fixture.
	memDB, err := db.OpenInMemory()
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(memDB); err != nil {
		return fmt.Errorf("failed to initialize tables -> %w", err)
	}

	if err = dao.Seed(memDB); err != nil {
		return fmt.Errorf("failed to seed fixture data -> %w", err)
	}

	s := api.NewServer(conf, memDB)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
