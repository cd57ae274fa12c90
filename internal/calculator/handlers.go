package calculator

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"calculator-api/internal/observability"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

var validate = validator.New()

// divisionByZeroMessage is part of the wire contract; clients match it verbatim.
const divisionByZeroMessage = "Division by zero is not allowed"

const internalErrorMessage = "internal server error"

// operationLabels maps route operation names to the fixed labels carried
// in the response body.
var operationLabels = map[string]string{
	"add":      "Addition",
	"subtract": "Subtraction",
	"multiply": "Multiplication",
	"divide":   "Division",
}

// ---------------------------------------------------------------------------
// Handlers — binary operations
// ---------------------------------------------------------------------------

// AddHandler handles POST /api/calculator/add
func AddHandler(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, "add", Add)
}

// SubtractHandler handles POST /api/calculator/subtract
func SubtractHandler(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, "subtract", Subtract)
}

// MultiplyHandler handles POST /api/calculator/multiply
func MultiplyHandler(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, "multiply", Multiply)
}

// DivideHandler handles POST /api/calculator/divide. The zero-divisor
// short-circuit lives here, before the engine call, so the fixed error
// message reaches the wire unchanged.
func DivideHandler(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, "divide", Divide)
}

// handleBinaryOp is the shared implementation for all binary calculator
// operations: decode, validate, short-circuit the zero divisor, compute,
// then serialize — with spans, metrics, and trace-correlated logs around
// each stage.
func handleBinaryOp(w http.ResponseWriter, r *http.Request, opName string, compute func(float64, float64) (float64, error)) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", opName),
		trace.WithAttributes(
			attribute.String("calculator.operation", opName),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	// --- 1. Decode and validate the request body ---
	var req CalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if err := validate.Struct(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "both operands a and b are required", err, http.StatusBadRequest, w)
		return
	}

	a, b := *req.A, *req.B

	// NaN and infinities are unreachable through standard JSON, but the
	// policy is explicit rejection rather than decoder-dependent behavior.
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid numeric input", fmt.Errorf("a=%g b=%g", a, b), http.StatusBadRequest, w)
		return
	}

	logger.Info("calculator operation requested",
		zap.String("operation", opName),
		zap.Float64("a", a),
		zap.Float64("b", b),
		zap.String("request_id", requestID),
	)

	span.SetAttributes(
		attribute.Float64("calculator.operand.a", a),
		attribute.Float64("calculator.operand.b", b),
	)

	// --- 2. Zero-divisor short-circuit ---
	if opName == "divide" && b == 0 {
		logger.Warn("division by zero rejected",
			zap.Float64("a", a),
			zap.String("request_id", requestID),
		)
		observability.RecordError(ctx, span, logger, errorCounter, opName, divisionByZeroMessage, ErrDivisionByZero, http.StatusBadRequest, w)
		return
	}

	// --- 3. Perform computation (timed for the histogram) ---
	start := time.Now()
	result, err := compute(a, b)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		// The engine's own guard; normally caught by the short-circuit above.
		if errors.Is(err, ErrDivisionByZero) {
			observability.RecordError(ctx, span, logger, errorCounter, opName, divisionByZeroMessage, err, http.StatusBadRequest, w)
			return
		}

		logger.Error("calculator operation failed",
			zap.String("operation", opName),
			zap.Float64("a", a),
			zap.Float64("b", b),
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		observability.RecordError(ctx, span, logger, errorCounter, opName, internalErrorMessage, err, http.StatusInternalServerError, w)
		return
	}

	// --- 4. Record metrics ---
	attrs := metric.WithAttributes(attribute.String("operation", opName))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, result, attrs)

	// --- 5. Span event with the result ---
	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("result", result),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("calculator.result", result))
	span.SetStatus(codes.Ok, "")

	// --- 6. Structured log with trace correlation ---
	logger.Info("calculator operation completed",
		zap.String("operation", opName),
		zap.Float64("a", a),
		zap.Float64("b", b),
		zap.Float64("result", result),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	// --- 7. Write JSON response ---
	resp := CalcResponse{
		Result:    result,
		Operation: operationLabels[opName],
		Timestamp: time.Now().UTC(),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
