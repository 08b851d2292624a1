package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/floodwatch/floodwatch-sync-api/api"
	"github.com/floodwatch/floodwatch-sync-api/config"
	"github.com/floodwatch/floodwatch-sync-api/geo"
	"github.com/floodwatch/floodwatch-sync-api/models"
	"github.com/floodwatch/floodwatch-sync-api/stores"
)

// Report handles report-related requests
type Report struct {
	Store *stores.ReportStore
}

// CreateReportHandler creates a new report
func (re Report) CreateReportHandler(w http.ResponseWriter, r *http.Request) {
	var report models.Report

	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	// IDs are client-assigned so offline writers can mint them; mint one
	// here only when the caller left it blank.
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	if report.Status == "" {
		report.Status = models.StatusPending
	}
	now := time.Now().UTC()
	report.CreatedAt = now
	report.UpdatedAt = now

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	created, err := re.Store.Create(ctx, report)
	if err != nil {
		if errors.Is(err, stores.ErrMissingID) {
			config.ErrorStatus("report id is required", http.StatusBadRequest, w, err)
			return
		}
		config.ErrorStatus("failed to create report", http.StatusInternalServerError, w, err)
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

// ReportByIDHandler returns a report by ID
func (re Report) ReportByIDHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["report_id"]

	zap.S().Debugf("report_id: %v", reportID)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := re.Store.GetByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			config.ErrorStatus("report not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get report by ID", http.StatusInternalServerError, w, err)
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

// UpdateReportHandler replaces a report by ID
func (re Report) UpdateReportHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["report_id"]

	var report models.Report
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	report.ID = reportID
	report.UpdatedAt = time.Now().UTC()

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	updated, err := re.Store.Update(ctx, report)
	if err != nil {
		config.ErrorStatus("failed to update report", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(updated)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteReportHandler deletes a report by ID
func (re Report) DeleteReportHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["report_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	err := re.Store.Delete(ctx, reportID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			config.ErrorStatus("report not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to delete report", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "report deleted"}`))
}

// ReportsInRadiusHandler returns all reports within radius miles of the
// given center. Reads come from the local cache unless source=remote.
func (re Report) ReportsInRadiusHandler(w http.ResponseWriter, r *http.Request) {
	center, radius, err := parseRadiusQuery(r)
	if err != nil {
		config.ErrorStatus("invalid radius query", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	var dbResp []models.Report
	if r.URL.Query().Get("source") == "remote" {
		dbResp, err = re.Store.ReportsInRadiusRemote(ctx, center, radius)
	} else {
		dbResp, err = re.Store.ReportsInRadius(ctx, center, radius)
	}
	if err != nil {
		config.ErrorStatus("failed to query reports in radius", http.StatusInternalServerError, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.Report{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ConfirmReportHandler records a confirmation vote on a report
func (re Report) ConfirmReportHandler(w http.ResponseWriter, r *http.Request) {
	re.vote(w, r, re.Store.Confirm)
}

// DenyReportHandler records a denial vote on a report
func (re Report) DenyReportHandler(w http.ResponseWriter, r *http.Request) {
	re.vote(w, r, re.Store.Deny)
}

func (re Report) vote(w http.ResponseWriter, r *http.Request, f func(ctx context.Context, id string) error) {
	reportID := mux.Vars(r)["report_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := f(ctx, reportID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			config.ErrorStatus("report not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to record vote", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "vote recorded"}`))
}

func parseRadiusQuery(r *http.Request) (geo.Coordinate, float64, error) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		return geo.Coordinate{}, 0, err
	}
	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		return geo.Coordinate{}, 0, err
	}
	radius, err := strconv.ParseFloat(r.URL.Query().Get("radius"), 64)
	if err != nil {
		radius = 10
		zap.S().Warnf("radius not set, using default of %v", radius)
	}
	return geo.Coordinate{Latitude: lat, Longitude: lon}, radius, nil
}
