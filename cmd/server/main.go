// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/unclebandit/outreachly-backend/internal/controller"
	"github.com/unclebandit/outreachly-backend/internal/db"
	"github.com/unclebandit/outreachly-backend/internal/handler"
	"github.com/unclebandit/outreachly-backend/internal/queue"
	"github.com/unclebandit/outreachly-backend/internal/repository"
	"github.com/unclebandit/outreachly-backend/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	// Init DB
	db.Init()
	q := queue.NewInMemoryQueue()

	contactRepo := &repository.ContactRepository{DB: db.DB}
	moderatorRepo := &repository.ModeratorRepository{DB: db.DB}
	outreachRepo := &repository.OutreachMessageRepository{DB: db.DB}
	queue.StartOutreachSendSubscriber(q, outreachRepo, contactRepo)

	ingestService := &service.IngestService{ContactRepo: contactRepo}
	assignmentService := &service.AssignmentService{
		ContactRepo:   contactRepo,
		ModeratorRepo: moderatorRepo,
	}
	birthdayService := &service.BirthdayService{ContactRepo: contactRepo}
	outreachService := &service.OutreachService{
		ContactRepo:  contactRepo,
		OutreachRepo: outreachRepo,
		Queue:        q,
	}

	contactController := &controller.ContactController{
		IngestService:     ingestService,
		AssignmentService: assignmentService,
		BirthdayService:   birthdayService,
		OutreachService:   outreachService,
	}

	contactHandler := &handler.ContactHandler{
		ContactRepo:       contactRepo,
		OutreachRepo:      outreachRepo,
		AssignmentService: assignmentService,
	}

	// Keep-alive pinger: owned by main, stopped on shutdown
	keepAlive := service.NewKeepAlive(db.DB, keepAliveInterval())
	keepAlive.Start()

	r := chi.NewRouter()

	// Contact routes
	r.Post("/contacts/upload", contactController.UploadContacts)
	r.Patch("/contacts/{id}/done", contactController.MarkDone)
	r.Get("/contacts/{id}/actions", contactHandler.ContactActionsHandler)
	r.Post("/assignments/distribute", contactController.Distribute)
	r.Get("/moderators/{id}/assignments/today", contactHandler.DailyAssignmentsHandler)
	r.Get("/birthdays", contactController.Birthdays)
	r.Post("/outreach/send", contactController.SendOutreach)
	r.Get("/outreach/stats", contactHandler.OutreachStatsHandler)

	srv := &http.Server{Addr: ":8080", Handler: r}

	go func() {
		log.Println("🚀 Server running on :8080")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	log.Println("🛑 Shutting down")
	keepAlive.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Println("⚠️ Server shutdown:", err)
	}
}

func keepAliveInterval() time.Duration {
	minutes, err := strconv.Atoi(os.Getenv("KEEPALIVE_INTERVAL"))
	if err != nil || minutes <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(minutes) * time.Minute
}
