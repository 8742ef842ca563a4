package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/nurpe/dispatch-admin/internal/auth"
	"github.com/nurpe/dispatch-admin/internal/config"
	httphandler "github.com/nurpe/dispatch-admin/internal/http"
	"github.com/nurpe/dispatch-admin/internal/http/middleware"
	"github.com/nurpe/dispatch-admin/internal/model"
	"github.com/nurpe/dispatch-admin/internal/service"
	"github.com/nurpe/dispatch-admin/internal/service/servicetest"
)

const testSecret = "test-secret"

type stubExcel struct{}

func (stubExcel) GenerateLedger([]model.TotalRecord) ([]byte, error) { return []byte("xlsx"), nil }

type stubPDF struct{}

func (stubPDF) GenerateBusinessReport(model.BusinessReport) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

type fixture struct {
	router *gin.Engine
}

func newFixture(t *testing.T, ledgerRows []model.TotalRecord, staffRows []model.DutyStaff, users []model.DirectoryUser) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Environment: "test",
		Auth:        config.AuthConfig{AccessSecret: testSecret},
		Report:      config.ReportConfig{BusinessDeptID: 5, FanoutLimit: 4},
	}

	ledger := servicetest.NewFakeLedgerStore(ledgerRows...)
	staff := servicetest.NewFakeStaffStore(staffRows...)
	directory := &servicetest.FakeDirectoryStore{Users: users}

	ledgerService := service.NewLedgerService(ledger, directory, stubExcel{}, stubPDF{}, cfg)
	staffService := service.NewStaffService(staff, ledger, cfg)
	fieldWorkService := service.NewFieldWorkService(servicetest.NewFakeFieldWorkStore())
	transactionService := service.NewTransactionService(servicetest.NewFakeTransactionStore())

	handler := httphandler.NewHandler(ledgerService, staffService, fieldWorkService, transactionService, zerolog.Nop())
	router := httphandler.NewRouter(
		handler,
		auth.RolePolicy{},
		middleware.Auth(auth.NewParser(testSecret)),
		zerolog.Nop(),
		"test",
	)
	return &fixture{router: router}
}

func token(t *testing.T, username string, superuser bool) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":      int64(1),
		"username":     username,
		"is_superuser": superuser,
		"exp":          time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func (f *fixture) do(t *testing.T, method, path, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
	return body
}

func sampleLedgerRows() []model.TotalRecord {
	base := model.TotalRecord{
		Date:                time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Plate:               "AB123",
		Region:              "north",
		Company:             "acme",
		FieldStaff:          "Alice",
		InternalStaff:       "anna",
		Platform:            "dispatchly",
		Account:             "acct-1",
		Password:            "hunter2",
		Business:            "relocation",
		ExpectedExpenditure: 100,
		Destination:         "depot",
	}
	second := base
	second.ExpectedExpenditure = 50
	third := base
	third.FieldStaff = "Bob"
	third.InternalStaff = "boris"
	third.Business = "towing"
	third.ExpectedExpenditure = 30
	return []model.TotalRecord{base, second, third}
}

func TestMissingTokenUnauthorized(t *testing.T) {
	f := newFixture(t, nil, nil, nil)
	rec := f.do(t, http.MethodGet, "/api/v1/total/list", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestDeleteForbiddenForRegularUser(t *testing.T) {
	f := newFixture(t, sampleLedgerRows(), nil, nil)
	rec := f.do(t, http.MethodDelete, "/api/v1/total/delete?id=1", "", token(t, "anna", false))
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	// the row must be untouched
	get := f.do(t, http.MethodGet, "/api/v1/total/get?id=1", "", token(t, "anna", false))
	if get.Code != http.StatusOK {
		t.Errorf("row deleted despite 403: get status %d", get.Code)
	}
}

func TestListEnvelope(t *testing.T) {
	f := newFixture(t, sampleLedgerRows(), nil, nil)
	rec := f.do(t, http.MethodGet, "/api/v1/total/list?page=1&page_size=2", "", token(t, "root", true))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decode(t, rec)
	for _, key := range []string{"data", "msg", "total", "page", "page_size"} {
		if _, ok := body[key]; !ok {
			t.Errorf("envelope missing %q", key)
		}
	}
	if body["total"].(float64) != 3 {
		t.Errorf("total = %v, want 3", body["total"])
	}
	if rows := body["data"].([]interface{}); len(rows) != 2 {
		t.Errorf("page rows = %d, want 2", len(rows))
	}
}

func TestPageSizeClamped(t *testing.T) {
	f := newFixture(t, sampleLedgerRows(), nil, nil)
	rec := f.do(t, http.MethodGet, "/api/v1/total/list?page=0&page_size=-5", "", token(t, "root", true))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (clamping policy, not rejection)", rec.Code)
	}
	body := decode(t, rec)
	if body["page"].(float64) != 1 || body["page_size"].(float64) != 10 {
		t.Errorf("clamped page/page_size = %v/%v, want 1/10", body["page"], body["page_size"])
	}
}

func TestBusinessRollupEnvelope(t *testing.T) {
	users := []model.DirectoryUser{
		{Username: "relocation", DeptID: 5},
		{Username: "towing", DeptID: 5},
	}
	f := newFixture(t, sampleLedgerRows(), nil, users)
	rec := f.do(t, http.MethodGet, "/api/v1/total/list/bs", "", token(t, "root", true))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decode(t, rec)
	// total counts summary rows, not underlying ledger rows
	if body["total"].(float64) != 2 {
		t.Errorf("total = %v, want 2 summary rows", body["total"])
	}
	if body["count_sum"].(float64) != 3 {
		t.Errorf("count_sum = %v, want 3", body["count_sum"])
	}
	if body["expected_expenditure_sum"].(float64) != 180 {
		t.Errorf("expected_expenditure_sum = %v, want 180", body["expected_expenditure_sum"])
	}
}

func TestStaffFinanceEnvelope(t *testing.T) {
	staff := []model.DutyStaff{
		{Name: "Alice", Type: model.StaffTypeField, ActualExpenditure: 140},
		{Name: "Bob", Type: model.StaffTypeField, ActualExpenditure: 25},
	}
	f := newFixture(t, sampleLedgerRows(), staff, nil)
	rec := f.do(t, http.MethodGet, "/api/v1/duty_staff/list_fs?field_staff=Alice", "", token(t, "root", true))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decode(t, rec)
	if rows := body["data"].([]interface{}); len(rows) != 1 {
		t.Fatalf("data rows = %d, want 1 (exact name filter)", len(rows))
	}
	// grand totals cover the whole field-staff cohort, not just Alice
	if body["total_count"].(float64) != 3 {
		t.Errorf("total_count = %v, want 3", body["total_count"])
	}
	if body["total_expected_expenditure_sum"].(float64) != 180 {
		t.Errorf("total_expected_expenditure_sum = %v, want 180", body["total_expected_expenditure_sum"])
	}
	if body["total_actual_expenditure"].(float64) != 165 {
		t.Errorf("total_actual_expenditure = %v, want 165", body["total_actual_expenditure"])
	}
}

func TestPartialUpdateNotFound(t *testing.T) {
	f := newFixture(t, nil, nil, nil)
	rec := f.do(t, http.MethodPost, "/api/v1/total/update/yyfs",
		`{"id": 999, "actual_expenditure": 80}`, token(t, "root", true))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestOperatorViewHidesCredentials(t *testing.T) {
	f := newFixture(t, sampleLedgerRows(), nil, nil)
	rec := f.do(t, http.MethodGet, "/api/v1/total/list/ob", "", token(t, "anna", false))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	raw := rec.Body.String()
	if strings.Contains(raw, "hunter2") || strings.Contains(raw, `"account"`) || strings.Contains(raw, `"password"`) {
		t.Errorf("operator view leaks credentials: %s", raw)
	}
	body := decode(t, rec)
	if body["total"].(float64) != 2 {
		t.Errorf("total = %v, want 2 (anna's rows only)", body["total"])
	}
}

func TestPartialUpdateLeavesOtherFieldsIntact(t *testing.T) {
	f := newFixture(t, sampleLedgerRows(), nil, nil)
	rec := f.do(t, http.MethodPost, "/api/v1/total/update/yyfs",
		`{"id": 1, "actual_expenditure": 91}`, token(t, "root", true))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	get := f.do(t, http.MethodGet, "/api/v1/total/get?id=1", "", token(t, "root", true))
	body := decode(t, get)
	data := body["data"].(map[string]interface{})
	if data["actual_expenditure"].(float64) != 91 {
		t.Errorf("actual_expenditure = %v, want 91", data["actual_expenditure"])
	}
	if data["expected_expenditure"].(float64) != 100 || data["plate"].(string) != "AB123" {
		t.Errorf("partial update touched other fields: %v", data)
	}
}

func TestHealthzOpen(t *testing.T) {
	f := newFixture(t, nil, nil, nil)
	rec := f.do(t, http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
