package server

import (
	"errors"
	"net/http"

	"github.com/devkekops/starshop/internal/app/client"
	"github.com/devkekops/starshop/internal/app/config"
	"github.com/devkekops/starshop/internal/app/handlers"
	"github.com/devkekops/starshop/internal/app/service"
	"github.com/devkekops/starshop/internal/app/storage"
)

var ErrNoBotToken = errors.New("bot token not configured")
var ErrNoDatabaseURI = errors.New("database not configured")

func Serve(cfg *config.Config) error {
	if cfg.TelegramBotToken == "" {
		return ErrNoBotToken
	}
	if cfg.DatabaseURI == "" {
		return ErrNoDatabaseURI
	}

	repo, err := storage.NewRepoDB(cfg.DatabaseURI)
	if err != nil {
		return err
	}
	defer repo.Close()

	cli := client.NewCli(cfg.TelegramAPIAddress, cfg.TelegramBotToken, cfg.ClientTimeout)
	submission := service.NewSubmissionService(repo, cli)

	var baseHandler = handlers.NewBaseHandler(repo, submission)

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: baseHandler,
	}

	return server.ListenAndServe()
}
