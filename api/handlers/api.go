package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/floodwatch/floodwatch-sync-api/api"
	"github.com/floodwatch/floodwatch-sync-api/api/scheduler"
	"github.com/floodwatch/floodwatch-sync-api/config"
	"github.com/floodwatch/floodwatch-sync-api/localcache"
	"github.com/floodwatch/floodwatch-sync-api/models"
	"github.com/floodwatch/floodwatch-sync-api/remote"
	"github.com/floodwatch/floodwatch-sync-api/stores"
)

// App stores the router and store connections, so it can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	dbHelper  remote.DatabaseHelper
	cache     *localcache.Cache
	reports   *stores.ReportStore
	threads   *stores.ThreadStore
	messages  *stores.MessageStore
	scheduler *scheduler.Scheduler
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	api.SetupGoGuardian()

	r := mux.NewRouter()
	r.Use(api.TimeoutMiddleware(30 * time.Second))

	report := Report{Store: a.reports}
	thread := Thread{Store: a.threads, MsgDB: a.messages}
	message := Message{Store: a.messages}
	live := Live{Reports: a.reports, Messages: a.messages}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/auth/token", http.HandlerFunc(api.CreateToken)).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/report", api.Middleware(http.HandlerFunc(report.CreateReportHandler))).Methods("POST")
	apiCreate.Handle("/report/{report_id}", api.Middleware(http.HandlerFunc(report.ReportByIDHandler))).Methods("GET")
	apiCreate.Handle("/report/{report_id}", api.Middleware(http.HandlerFunc(report.UpdateReportHandler))).Methods("PUT")
	apiCreate.Handle("/report/{report_id}", api.Middleware(http.HandlerFunc(report.DeleteReportHandler))).Methods("DELETE")
	apiCreate.Handle("/report/{report_id}/confirm", api.Middleware(http.HandlerFunc(report.ConfirmReportHandler))).Methods("POST")
	apiCreate.Handle("/report/{report_id}/deny", api.Middleware(http.HandlerFunc(report.DenyReportHandler))).Methods("POST")
	apiCreate.Handle("/reports/radius", api.Middleware(http.HandlerFunc(report.ReportsInRadiusHandler))).Methods("GET")
	apiCreate.Handle("/report/{report_id}/threads", api.Middleware(http.HandlerFunc(thread.ThreadsByReportIDHandler))).Methods("GET")

	apiCreate.Handle("/thread", api.Middleware(http.HandlerFunc(thread.CreateThreadHandler))).Methods("POST")
	apiCreate.Handle("/thread/{thread_id}", api.Middleware(http.HandlerFunc(thread.ThreadByIDHandler))).Methods("GET")
	apiCreate.Handle("/thread/{thread_id}", api.Middleware(http.HandlerFunc(thread.DeleteThreadHandler))).Methods("DELETE")
	apiCreate.Handle("/thread/{thread_id}/messages", api.Middleware(http.HandlerFunc(message.MessagesByThreadIDHandler))).Methods("GET")
	apiCreate.Handle("/thread/{thread_id}/messages", api.Middleware(http.HandlerFunc(message.CreateMessageHandler))).Methods("POST")

	apiCreate.Handle("/message/{message_id}/upvote", api.Middleware(http.HandlerFunc(message.UpvoteMessageHandler))).Methods("POST")
	apiCreate.Handle("/message/{message_id}", api.Middleware(http.HandlerFunc(message.DeleteMessageHandler))).Methods("DELETE")

	// websocket feeds authenticate with the bearer token query handshake
	r.HandleFunc("/ws/reports", live.ReportsWebSocketHandler)
	r.HandleFunc("/ws/messages", live.ThreadMessagesWebSocketHandler)

	return r
}

// Initialize is invoked by main to connect with the stores and create a router
func (a *App) Initialize() error {

	client, err := remote.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = remote.NewDatabase(&a.Config, client)
	err = client.Connect(context.Background())
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("floodwatch-sync-api has connected to the remote store")

	a.cache, err = localcache.Open(a.Config.CachePath)
	if err != nil {
		zap.S().With(err).Error("failed to open local cache")
		return err
	}

	remoteReports := remote.NewReportStore(a.dbHelper)
	remoteThreads := remote.NewThreadStore(a.dbHelper)
	remoteMessages := remote.NewMessageStore(a.dbHelper)

	a.reports = stores.NewReportStore(remoteReports, a.cache.Reports())
	a.threads = stores.NewThreadStore(remoteThreads, a.cache.Threads())
	a.messages = stores.NewMessageStore(remoteMessages, a.cache.Messages())

	// start the cache reconciliation sweep
	a.scheduler = scheduler.New(remoteReports, remoteThreads, remoteMessages, a.cache)
	a.scheduler.Start()

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
