package http

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/market/config"
	"golang-stock-insight/internal/market/dto"
	"golang-stock-insight/internal/market/repository"
	"golang-stock-insight/internal/market/service"
	"golang-stock-insight/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubAssistant struct {
	answer string
}

func (s stubAssistant) GenerateAnswer(ctx context.Context, prompt string) (string, error) {
	return s.answer, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Predictor: config.Predictor{MaxDepth: 5, MinSamplesSplit: 5},
		Analysis: config.Analysis{
			ShortSMAPeriod: 20,
			LongSMAPeriod:  50,
			RSIPeriod:      14,
			MACDFast:       12,
			MACDSlow:       26,
			MACDSignal:     9,
			VolumeWindow:   5,
		},
	}
}

func sampleRows() []entity.StockPrice {
	return []entity.StockPrice{
		{Company: "NIFTY 50", Date: "2024-01-02", Open: 21700, High: 21800, Low: 21600, Close: 21741.9, Volume: 250},
		{Company: "NIFTY BANK", Date: "2024-01-01", Open: 48000, High: 48300, Low: 47900, Close: 48200, Volume: 90},
		{Company: "NIFTY 50", Date: "2024-01-01", Open: 21500, High: 21700, Low: 21450, Close: 21650, Volume: 200},
	}
}

func newTestServer(table *repository.Table, assistant repository.AssistantRepository) *echo.Echo {
	return newTestServerWithLogger(table, assistant, logger.NewNop())
}

func newTestServerWithLogger(table *repository.Table, assistant repository.AssistantRepository, log *logger.Logger) *echo.Echo {
	cfg := testConfig()
	repo := repository.NewStockPriceRepository(table)
	answers := cache.New(time.Hour, time.Hour)

	return NewServer(cfg, log, Handlers{
		Company:    NewCompanyHandler(service.NewCompanyService(repo, log), log),
		StockData:  NewStockDataHandler(service.NewStockDataService(repo, log), log),
		Prediction: NewPredictionHandler(service.NewPredictionService(cfg, repo, log), log),
		Analysis:   NewAnalysisHandler(service.NewAnalysisService(cfg, repo, log), log),
		Chat:       NewChatHandler(service.NewChatService(repo, assistant, answers, log), log),
		Health:     NewHealthHandler(repo),
	})
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetCompanies(t *testing.T) {
	e := newTestServer(repository.NewTable(sampleRows()), nil)

	rec := do(e, http.MethodGet, "/api/companies", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var companies []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &companies))
	assert.Equal(t, []string{"NIFTY 50", "NIFTY BANK"}, companies)
}

func TestGetCompanies_DatasetUnavailable(t *testing.T) {
	e := newTestServer(nil, nil)

	rec := do(e, http.MethodGet, "/api/companies", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetStockData(t *testing.T) {
	e := newTestServer(repository.NewTable(sampleRows()), nil)

	rec := do(e, http.MethodGet, "/api/stock-data/NIFTY%2050", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"company":"NIFTY 50","date":"2024-01-01","open":21500,"high":21700,"low":21450,"close":21650,"volume":200},
		{"company":"NIFTY 50","date":"2024-01-02","open":21700,"high":21800,"low":21600,"close":21741.9,"volume":250}
	]`, rec.Body.String())
}

func TestGetStockData_NotFound(t *testing.T) {
	tests := []struct {
		name  string
		table *repository.Table
	}{
		{name: "unknown company", table: repository.NewTable(sampleRows())},
		{name: "dataset unavailable", table: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestServer(tt.table, nil)

			rec := do(e, http.MethodGet, "/api/stock-data/SENSEX", "")
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `[]`, rec.Body.String())
		})
	}
}

func TestCompanyParam_DecodedOnce(t *testing.T) {
	e := newTestServer(repository.NewTable([]entity.StockPrice{
		{Company: "A%2B", Date: "2024-01-01", Close: 1},
		{Company: "A+", Date: "2024-01-01", Close: 2},
		{Company: "100%", Date: "2024-01-01", Close: 3},
	}), nil)

	tests := []struct {
		target    string
		wantClose float64
	}{
		{target: "/api/stock-data/A%252B", wantClose: 1},
		{target: "/api/stock-data/A+", wantClose: 2},
		{target: "/api/stock-data/100%25", wantClose: 3},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := do(e, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, rec.Code)

			var rows []entity.StockPrice
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
			require.Len(t, rows, 1)
			assert.Equal(t, tt.wantClose, rows[0].Close)
		})
	}

	rec := do(e, http.MethodPost, "/api/predict/A%252B", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"prediction":1,"last_price":1}`, rec.Body.String())
}

func TestPredict(t *testing.T) {
	e := newTestServer(repository.NewTable(sampleRows()), nil)

	rec := do(e, http.MethodPost, "/api/predict/NIFTY%20BANK", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.PredictionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 48200.0, resp.Prediction)
	assert.Equal(t, 48200.0, resp.LastPrice)
}

func TestPredict_Errors(t *testing.T) {
	nonFinite := repository.NewTable([]entity.StockPrice{
		{Company: "BROKEN", Date: "2024-01-01", Close: 10, Volume: math.NaN()},
	})

	tests := []struct {
		name     string
		table    *repository.Table
		company  string
		wantCode int
		wantBody string
	}{
		{
			name:     "unknown company",
			table:    repository.NewTable(sampleRows()),
			company:  "SENSEX",
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"Company not found"}`,
		},
		{
			name:     "dataset unavailable",
			table:    nil,
			company:  "NIFTY%2050",
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"Company not found"}`,
		},
		{
			name:     "model failure",
			table:    nonFinite,
			company:  "BROKEN",
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"input contains NaN or infinity: sample 0"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestServer(tt.table, nil)

			rec := do(e, http.MethodPost, "/api/predict/"+tt.company, "")
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestPredict_RejectsGet(t *testing.T) {
	e := newTestServer(repository.NewTable(sampleRows()), nil)

	rec := do(e, http.MethodGet, "/api/predict/NIFTY%2050", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestGetAnalysis(t *testing.T) {
	e := newTestServer(repository.NewTable(sampleRows()), nil)

	rec := do(e, http.MethodGet, "/api/analysis/NIFTY%2050", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.AnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "NIFTY 50", resp.Company)
	assert.Equal(t, 21741.9, resp.LastPrice)

	rec = do(e, http.MethodGet, "/api/analysis/SENSEX", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Company not found"}`, rec.Body.String())
}

func TestChat(t *testing.T) {
	e := newTestServer(repository.NewTable(sampleRows()), stubAssistant{answer: "Markets fluctuate."})

	rec := do(e, http.MethodPost, "/api/chat", `{"question":"Is NIFTY 50 volatile?","company":"NIFTY 50"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"answer":"Markets fluctuate.","cached":false}`, rec.Body.String())

	rec = do(e, http.MethodPost, "/api/chat", `{"question":"is nifty 50 volatile?","company":"NIFTY 50"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"answer":"Markets fluctuate.","cached":true}`, rec.Body.String())
}

func TestChat_Errors(t *testing.T) {
	enabled := stubAssistant{answer: "ok"}

	tests := []struct {
		name      string
		assistant repository.AssistantRepository
		body      string
		wantCode  int
	}{
		{name: "malformed body", assistant: enabled, body: `{"question":`, wantCode: http.StatusBadRequest},
		{name: "empty question", assistant: enabled, body: `{"question":"  "}`, wantCode: http.StatusBadRequest},
		{name: "unknown company", assistant: enabled, body: `{"question":"hi","company":"SENSEX"}`, wantCode: http.StatusNotFound},
		{name: "assistant disabled", assistant: nil, body: `{"question":"hi"}`, wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestServer(repository.NewTable(sampleRows()), tt.assistant)

			rec := do(e, http.MethodPost, "/api/chat", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestHealth(t *testing.T) {
	e := newTestServer(repository.NewTable(sampleRows()), nil)
	rec := do(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","data_loaded":true,"records":3}`, rec.Body.String())

	e = newTestServer(nil, nil)
	rec = do(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","data_loaded":false,"records":0}`, rec.Body.String())
}

func TestServer_CORSAndRequestID(t *testing.T) {
	e := newTestServer(repository.NewTable(sampleRows()), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/companies", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestPredict_LogsFailures(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := newTestServerWithLogger(repository.NewTable([]entity.StockPrice{
		{Company: "BROKEN", Date: "2024-01-01", Close: 10, Volume: math.NaN()},
	}), nil, &logger.Logger{Logger: zap.New(core)})

	rec := do(e, http.MethodPost, "/api/predict/BROKEN", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	failures := logs.FilterMessage("Error in prediction").FilterField(zap.String("company", "BROKEN")).All()
	require.NotEmpty(t, failures)
	for _, entry := range failures {
		assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	}

	rec = do(e, http.MethodPost, "/api/predict/SENSEX", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 1, logs.FilterMessage("Company not found for prediction").Len())
}
