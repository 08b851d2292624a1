package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/floodwatch/floodwatch-sync-api/api"
	"github.com/floodwatch/floodwatch-sync-api/config"
	"github.com/floodwatch/floodwatch-sync-api/models"
	"github.com/floodwatch/floodwatch-sync-api/stores"
)

// Thread handles discussion thread requests
type Thread struct {
	Store *stores.ThreadStore
	MsgDB *stores.MessageStore
}

// Message handles discussion message requests
type Message struct {
	Store *stores.MessageStore
}

// CreateThreadHandler creates a new discussion thread
func (t Thread) CreateThreadHandler(w http.ResponseWriter, r *http.Request) {
	var thread models.DiscussionThread

	if err := json.NewDecoder(r.Body).Decode(&thread); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if thread.ThreadID == "" {
		thread.ThreadID = uuid.New().String()
	}
	thread.CreatedAt = time.Now().UTC()

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	created, err := t.Store.Create(ctx, thread)
	if err != nil {
		config.ErrorStatus("failed to create thread", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(created)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// ThreadByIDHandler returns a thread by ID
func (t Thread) ThreadByIDHandler(w http.ResponseWriter, r *http.Request) {
	threadID := mux.Vars(r)["thread_id"]

	zap.S().Debugf("thread_id: %v", threadID)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := t.Store.GetByID(ctx, threadID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			config.ErrorStatus("thread not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get thread by ID", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ThreadsByReportIDHandler returns all threads attached to a report
func (t Thread) ThreadsByReportIDHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["report_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := t.Store.ByReport(ctx, reportID)
	if err != nil {
		config.ErrorStatus("failed to get threads by report ID", http.StatusInternalServerError, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.DiscussionThread{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteThreadHandler deletes a thread by ID. Messages survive unless
// cascade=true is passed.
func (t Thread) DeleteThreadHandler(w http.ResponseWriter, r *http.Request) {
	threadID := mux.Vars(r)["thread_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if r.URL.Query().Get("cascade") == "true" {
		if err := t.MsgDB.DeleteByThread(ctx, threadID); err != nil {
			config.ErrorStatus("failed to delete thread messages", http.StatusInternalServerError, w, err)
			return
		}
	}

	err := t.Store.Delete(ctx, threadID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			config.ErrorStatus("thread not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to delete thread", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "thread deleted"}`))
}

// CreateMessageHandler creates a new message in a thread
func (m Message) CreateMessageHandler(w http.ResponseWriter, r *http.Request) {
	threadID := mux.Vars(r)["thread_id"]

	var message models.DiscussionMessage
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if message.MessageID == "" {
		message.MessageID = uuid.New().String()
	}
	message.ThreadID = threadID
	message.Timestamp = time.Now().UTC()

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	created, err := m.Store.Create(ctx, message)
	if err != nil {
		config.ErrorStatus("failed to create message", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(created)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// MessagesByThreadIDHandler returns all messages in a thread
func (m Message) MessagesByThreadIDHandler(w http.ResponseWriter, r *http.Request) {
	threadID := mux.Vars(r)["thread_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := m.Store.ByThread(ctx, threadID)
	if err != nil {
		config.ErrorStatus("failed to get messages by thread ID", http.StatusInternalServerError, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.DiscussionMessage{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UpvoteMessageHandler increments the upvote counter on a message
func (m Message) UpvoteMessageHandler(w http.ResponseWriter, r *http.Request) {
	messageID := mux.Vars(r)["message_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := m.Store.Upvote(ctx, messageID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			config.ErrorStatus("message not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to upvote message", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "upvote recorded"}`))
}

// DeleteMessageHandler deletes a message by ID
func (m Message) DeleteMessageHandler(w http.ResponseWriter, r *http.Request) {
	messageID := mux.Vars(r)["message_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	err := m.Store.Delete(ctx, messageID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			config.ErrorStatus("message not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to delete message", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "message deleted"}`))
}
