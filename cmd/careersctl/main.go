package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/whitecaroot/careers-builder/internal/apiclient"
	"github.com/whitecaroot/careers-builder/internal/config"
	"github.com/whitecaroot/careers-builder/internal/services"
	"github.com/whitecaroot/careers-builder/internal/session"
)

// careersctl is a small single-user companion to the web gateway. It keeps
// its login in the file-backed session store, so a signed-in session
// survives between invocations.
func main() {
	// 1. Load Environment Variables (.env is optional)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}
	cfg := config.Load()

	// 2. Structured Logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// 3. Wire the API client against the file session store
	client := apiclient.New(cfg.APIBaseURL, cfg.APITimeout, logger)
	store := session.NewFileStore(cfg.SessionFile)
	mgr := session.NewManager(store, services.NewAuthService(client), logger)
	client.SetTokenSource(apiclient.TokenSourceFunc(mgr.Token))
	client.OnUnauthorized(mgr.Invalidate)

	if len(os.Args) < 2 {
		usage()
	}
	ctx := context.Background()

	// 4. Dispatch
	switch os.Args[1] {
	case "login":
		if len(os.Args) != 4 {
			usage()
		}
		if err := mgr.Login(ctx, os.Args[2], os.Args[3]); err != nil {
			logger.Fatal(err)
		}
		ses := mgr.Session()
		fmt.Printf("Signed in as %s (%s)\n", ses.User.Email, ses.Company.Name)
	case "whoami":
		mgr.Bootstrap(ctx)
		ses := mgr.Session()
		if ses == nil {
			fmt.Println("Not signed in")
			os.Exit(1)
		}
		fmt.Printf("%s @ %s (/%s)\n", ses.User.Email, ses.Company.Name, ses.Company.Slug)
	case "jobs":
		mgr.Bootstrap(ctx)
		ses := mgr.Session()
		if ses == nil {
			logger.Fatal("Not signed in, run: careersctl login <email> <password>")
		}
		jobs, err := services.NewJobService(client).ListAdmin(ctx, ses.Company.Slug)
		if err != nil {
			logger.Fatal(err)
		}
		for _, j := range jobs {
			state := "draft"
			if j.IsPublished {
				state = "published"
			}
			fmt.Printf("%-10s %-30s %s\n", state, j.Title, j.Slug)
		}
	case "logout":
		mgr.Logout()
		fmt.Println("Signed out")
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: careersctl <login <email> <password> | whoami | jobs | logout>")
	os.Exit(2)
}
