package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"

	"github.com/jorgelillo7/biwenger-tools/biwenger"
	"github.com/jorgelillo7/biwenger-tools/controller"
	"github.com/jorgelillo7/biwenger-tools/notify"
	"github.com/jorgelillo7/biwenger-tools/scrapers"
	"github.com/jorgelillo7/biwenger-tools/storage"
	"github.com/jorgelillo7/biwenger-tools/web"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	portNum := 8080 // 8080 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	season := os.Getenv("SEASON")
	if season == "" {
		season = strconv.Itoa(time.Now().Year())
	}
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	clock := clock.New()
	store, err := storage.New(dataDir, season)
	if err != nil {
		log.Fatalf("error creating storage: %v", err)
	}

	biwengerClient, err := biwenger.New(biwenger.Config{
		Email:    os.Getenv("BIWENGER_EMAIL"),
		Password: os.Getenv("BIWENGER_PASSWORD"),
		LeagueID: os.Getenv("BIWENGER_LEAGUE_ID"),
	})
	if err != nil {
		log.Fatalf("error creating biwenger client: %v", err)
	}

	analyticsClient, err := scrapers.NewAnalytics("")
	if err != nil {
		log.Fatalf("error creating analytics client: %v", err)
	}
	tipsClient, err := scrapers.NewTips("")
	if err != nil {
		log.Fatalf("error creating tips client: %v", err)
	}

	// Telegram is optional, the suite works fine without notifications.
	var notifier notify.Notifier
	botToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatID := os.Getenv("TELEGRAM_CHAT_ID")
	if botToken != "" && chatID != "" {
		notifier, err = notify.NewTelegram(botToken, chatID, "")
		if err != nil {
			log.Fatalf("error creating telegram notifier: %v", err)
		}
	}

	ctrl, err := controller.New(clock, biwengerClient, analyticsClient, tipsClient, store, notifier)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	admin := web.AdminCreds{
		User:     os.Getenv("ADMIN_USER"),
		Password: os.Getenv("ADMIN_PASSWORD"),
	}
	if admin.User == "" || admin.Password == "" {
		log.Fatalf("ADMIN_USER and ADMIN_PASSWORD must be set")
	}

	server, err := web.NewServer(portNum, ctrl, admin)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Setup a job that ingests new board messages every 6 hours.
	wg.Add(1)
	go ctrl.RunPeriodicBoardSync(6*time.Hour, shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
