package main

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/rental-cart/internal/config"
	"github.com/TemirB/rental-cart/internal/domain"
)

// Feeder plays the product pages: it publishes "item added" events for a set of sessions.
type Feeder struct {
	writer   *kafkago.Writer
	logger   *zap.Logger
	sessions []string

	mu        sync.Mutex
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	isRunning atomic.Bool
	totalSent atomic.Int64
}

type FeedRequest struct {
	Rate     int    `json:"rate"`
	Duration string `json:"duration"`
}

var catalog = []domain.CartItem{
	{Name: "Sony A7 III", Price: 350000, Image: "/img/a7iii.jpg", Color: "Black"},
	{Name: "Canon EF 24-70mm", Price: 200000, Image: "/img/ef2470.jpg"},
	{Name: "DJI Ronin-S", Price: 250000, Image: "/img/ronin.jpg", Size: "M"},
	{Name: "Manfrotto Tripod", Price: 75000, Image: "/img/tripod.jpg", Color: "Silver", Size: "L"},
	{Name: "Rode VideoMic", Price: 60000, Image: "/img/videomic.jpg"},
	{Name: "GoPro Hero 12", Price: 150000, Image: "/img/gopro.jpg", Color: "Black"},
}

func NewFeeder(cfg config.Kafka, sessions []string, logger *zap.Logger) *Feeder {
	writer := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Brokers...),
		Topic:                  cfg.ItemsTopic,
		Balancer:               &kafkago.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		BatchSize:              100,
		AllowAutoTopicCreation: true,
	}
	return &Feeder{writer: writer, logger: logger, sessions: sessions}
}

func (f *Feeder) Start(rate int, duration time.Duration) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.isRunning.Load() {
		return false
	}
	f.isRunning.Store(true)
	f.totalSent.Store(0)

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	f.cancel = cancel

	f.logger.Info("Feeding started", zap.Int("rate", rate), zap.Duration("duration", duration))

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		defer f.isRunning.Store(false)
		defer cancel()

		ticker := time.NewTicker(time.Second / time.Duration(rate))
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				f.send(ctx)
			case <-ctx.Done():
				f.logger.Info("Feeding finished", zap.Int64("total_sent", f.totalSent.Load()))
				return
			}
		}
	}()
	return true
}

func (f *Feeder) send(ctx context.Context) {
	event := f.randomEvent()
	value, err := json.Marshal(event)
	if err != nil {
		f.logger.Error("Error marshaling event", zap.Error(err))
		return
	}
	err = f.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(event.SessionID),
		Value: value,
		Time:  time.Now(),
	})
	if err != nil {
		f.logger.Warn("Error sending event to Kafka", zap.Error(err))
		return
	}
	f.totalSent.Add(1)
}

// randomEvent picks a session and a catalog entry. Half of the events reuse the catalog
// position as id so quantities of existing rows grow too.
func (f *Feeder) randomEvent() domain.ItemAddedEvent {
	i := rand.Intn(len(catalog))
	item := catalog[i]
	if rand.Intn(2) == 0 {
		item.ID = uuid.NewString()
	} else {
		item.ID = "catalog-" + string(rune('a'+i))
	}
	return domain.ItemAddedEvent{
		SessionID: f.sessions[rand.Intn(len(f.sessions))],
		Item:      item,
	}
}

func (f *Feeder) Stop() {
	f.mu.Lock()
	cancel := f.cancel
	f.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	f.wg.Wait()
}

func (f *Feeder) Close() {
	f.Stop()
	_ = f.writer.Close()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func main() {
	cfg := config.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if len(cfg.Kafka.Brokers) == 0 {
		cfg.Kafka.Brokers = []string{"localhost:9092"}
	}

	sessions := strings.Fields(strings.ReplaceAll(os.Getenv("FEEDER_SESSIONS"), ",", " "))
	if len(sessions) == 0 {
		for i := 0; i < 5; i++ {
			sessions = append(sessions, uuid.NewString())
		}
	}
	logger.Info("Feeding sessions", zap.Strings("sessions", sessions))

	feeder := NewFeeder(cfg.Kafka, sessions, logger)
	defer feeder.Close()

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/start", func(w http.ResponseWriter, r *http.Request) {
		var req FeedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.Rate <= 0 {
			req.Rate = 10
		}
		duration, err := time.ParseDuration(req.Duration)
		if err != nil || duration <= 0 {
			http.Error(w, "Invalid duration", http.StatusBadRequest)
			return
		}
		if !feeder.Start(req.Rate, duration) {
			http.Error(w, "already running", http.StatusConflict)
			return
		}
		writeJSON(w, map[string]any{
			"status":   "started",
			"rate":     req.Rate,
			"duration": duration.String(),
		})
	})

	r.Post("/stop", func(w http.ResponseWriter, _ *http.Request) {
		feeder.Stop()
		writeJSON(w, map[string]any{
			"status":     "stopped",
			"total_sent": feeder.totalSent.Load(),
		})
	})

	r.Get("/stats", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{
			"is_running": feeder.isRunning.Load(),
			"total_sent": feeder.totalSent.Load(),
			"sessions":   sessions,
		})
	})

	addr := ":8082"
	if port := os.Getenv("FEEDER_PORT"); port != "" {
		addr = ":" + port
	}
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("Feeder listening", zap.String("addr", addr), zap.String("topic", cfg.Kafka.ItemsTopic))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Feeder stopped", zap.Error(err))
	}
}
