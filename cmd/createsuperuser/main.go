// Command createsuperuser creates an activated user holding every permission.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/litvinov-da/library/config"
	"github.com/litvinov-da/library/data"
	"github.com/litvinov-da/library/data/dto"
	"github.com/litvinov-da/library/internal/jsonlog"
	"github.com/litvinov-da/library/repository"
	"github.com/litvinov-da/library/repository/postgres"
	"github.com/litvinov-da/library/service"
)

func main() {
	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	var requestBody dto.CreateUserRequestBody
	flagSet := flag.NewFlagSet("createsuperuser", flag.ExitOnError)
	flagSet.StringVar(&requestBody.Name, "name", "", "full name of the user")
	flagSet.StringVar(&requestBody.Email, "email", "", "email address used to log in")
	flagSet.StringVar(&requestBody.Password, "password", os.Getenv("SUPERUSER_PASSWORD"), "password (defaults to $SUPERUSER_PASSWORD)")
	configPath := flagSet.String("config", os.Getenv("CONFIG"), "path to the YAML configuration file")
	flagSet.Parse(os.Args[1:])
	requestBody.Permissions = []string{data.PermissionManageCatalog, data.PermissionMarkReturned}

	cfg, err := config.DecodeFile(*configPath)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	db, err := postgres.OpenDBConn(cfg)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	defer db.Close()
	if _, err := postgres.Migrate(db); err != nil {
		logger.PrintFatal(err, nil)
	}

	var wg sync.WaitGroup
	svc := service.New(cfg, &wg, logger, repository.New(db))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	user, err := svc.CreateUser(ctx, requestBody)
	if err != nil {
		var validationError *service.ValidationError
		if errors.As(err, &validationError) {
			for field, message := range validationError.Errors {
				fmt.Fprintf(os.Stderr, "%s: %s\n", field, message)
			}
			os.Exit(2)
		}
		logger.PrintFatal(err, nil)
	}
	// Wait for the welcome email.
	wg.Wait()
	logger.PrintInfo("superuser created", map[string]string{
		"id":    fmt.Sprint(user.ID),
		"email": user.Email,
	})
}
