package calculator

import (
	"net/http"
	"testing"
	"time"

	"calculator-api/internal/observability"
	"calculator-api/internal/testutil"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	observability.Logger = zap.NewNop()
	if err := InitMetrics(); err != nil {
		t.Fatalf("initializing calculator metrics: %v", err)
	}

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		RegisterRoutes(r)
	})
	return r
}

type errorBody struct {
	Error string `json:"error"`
}

func TestBinaryOperationSuccess(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name      string
		path      string
		body      string
		result    float64
		operation string
	}{
		{name: "add", path: "/api/calculator/add", body: `{"a":10,"b":5}`, result: 15, operation: "Addition"},
		{name: "subtract", path: "/api/calculator/subtract", body: `{"a":3,"b":7}`, result: -4, operation: "Subtraction"},
		{name: "multiply", path: "/api/calculator/multiply", body: `{"a":6,"b":7}`, result: 42, operation: "Multiplication"},
		{name: "divide", path: "/api/calculator/divide", body: `{"a":20,"b":4}`, result: 5, operation: "Division"},
		{name: "zero operands are legal", path: "/api/calculator/add", body: `{"a":0,"b":0}`, result: 0, operation: "Addition"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before := time.Now().UTC()
			w := testutil.PostJSON(t, router, tc.path, tc.body)

			testutil.CheckResponseCode(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/json", w.Result().Header.Get("Content-Type"))

			var resp CalcResponse
			testutil.DecodeJSONBody(t, w.Result().Body, &resp)

			assert.Equal(t, tc.result, resp.Result)
			assert.Equal(t, tc.operation, resp.Operation)
			assert.False(t, resp.Timestamp.Before(before), "timestamp predates the request")
			assert.False(t, resp.Timestamp.After(time.Now().UTC()), "timestamp is in the future")
		})
	}
}

func TestDivideByZeroShortCircuit(t *testing.T) {
	router := newTestRouter(t)

	w := testutil.PostJSON(t, router, "/api/calculator/divide", `{"a":20,"b":0}`)

	testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)

	var body errorBody
	testutil.DecodeJSONBody(t, w.Result().Body, &body)
	assert.Equal(t, "Division by zero is not allowed", body.Error)
}

func TestMalformedRequestsReturn400(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		path string
		body string
	}{
		{name: "empty object", path: "/api/calculator/multiply", body: `{}`},
		{name: "missing b", path: "/api/calculator/add", body: `{"a":1}`},
		{name: "missing a", path: "/api/calculator/subtract", body: `{"b":1}`},
		{name: "not json", path: "/api/calculator/add", body: `not json at all`},
		{name: "string operand", path: "/api/calculator/divide", body: `{"a":"ten","b":2}`},
		{name: "empty body", path: "/api/calculator/multiply", body: ``},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := testutil.PostJSON(t, router, tc.path, tc.body)

			testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)

			var body errorBody
			testutil.DecodeJSONBody(t, w.Result().Body, &body)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestCalcRequestRoundTrip(t *testing.T) {
	a, b := 1.5, -2.25
	in := CalcRequest{A: &a, B: &b}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out CalcRequest
	require.NoError(t, json.Unmarshal(data, &out))

	require.NotNil(t, out.A)
	require.NotNil(t, out.B)
	assert.Equal(t, a, *out.A)
	assert.Equal(t, b, *out.B)
}

func TestCalcResponseRoundTrip(t *testing.T) {
	in := CalcResponse{
		Result:    3.75,
		Operation: "Addition",
		Timestamp: time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out CalcResponse
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, in.Result, out.Result)
	assert.Equal(t, in.Operation, out.Operation)
	assert.True(t, in.Timestamp.Equal(out.Timestamp))
}
