package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const baseURL = "http://0.0.0.0:9234"

type task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int8   `json:"priority"`
	DueDate     string `json:"due_date"`
	Completed   bool   `json:"completed"`
}

func main() {

	//Initialize the tracer
	initTracer()

	//Create an HTTP client with OpenTelemetry instrumentation
	client := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

	ctx := context.Background()

	newPtrStr := func(s string) *string {
		return &s
	}

	newPtrInt8 := func(i int8) *int8 {
		return &i
	}

	//Create
	created, err := doRequest(ctx, client, http.MethodPost, baseURL+"/tasks", map[string]interface{}{
		"title":       "Buy milk",
		"description": "From the corner store",
		"priority":    3,
		"due_date":    time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})
	if err != nil {
		log.Fatalf("Couldn't create task: %s", err)
	}

	fmt.Printf("New Task\n\tID: %d\n", created.ID)
	fmt.Printf("\tTitle: %s\n", created.Title)
	fmt.Printf("\tPriority: %d\n", created.Priority)
	fmt.Printf("\tDue Date: %s\n", created.DueDate)

	//Update
	done := true
	if _, err = doRequest(ctx, client, http.MethodPut, fmt.Sprintf("%s/tasks/%d", baseURL, created.ID), map[string]interface{}{
		"title":     newPtrStr("Buy milk and bread"),
		"priority":  newPtrInt8(1),
		"completed": &done,
	}); err != nil {
		log.Fatalf("Couldn't update task: %s", err)
	}

	//Read
	updated, err := doRequest(ctx, client, http.MethodGet, fmt.Sprintf("%s/tasks/%d", baseURL, created.ID), nil)
	if err != nil {
		log.Fatalf("Couldn't read task: %s", err)
	}

	fmt.Printf("Updated Task\n\tID: %d\n", updated.ID)
	fmt.Printf("\tTitle: %s\n", updated.Title)
	fmt.Printf("\tPriority: %d\n", updated.Priority)
	fmt.Printf("\tDue Date: %s\n", updated.DueDate)
	fmt.Printf("\tCompleted: %t\n", updated.Completed)

	//Give the batched span processors time to export
	time.Sleep(10 * time.Second)
}

func doRequest(ctx context.Context, client *http.Client, method, url string, body interface{}) (task, error) {
	var buf bytes.Buffer

	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return task{}, fmt.Errorf("json.Encode: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return task{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return task{}, fmt.Errorf("client.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return task{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var res task

	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return task{}, fmt.Errorf("json.Decode: %w", err)
	}

	return res, nil
}

//initTracer initializes OpenTelemetry tracing with Jaeger and stdout exporters
func initTracer() {
	jaegerEndpoint := "http://localhost:14268/api/traces"

	//Create a Jaeger exporter
	jaegerExporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(jaegerEndpoint)))
	if err != nil {
		log.Fatalln("Couldn't initialize jaeger exporter: ", err)
	}

	//Create a stdout exporter to print traces to the console
	stdoutExporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		log.Fatalln("Couldn't initialize stdout exporter: ", err)
	}

	//Create a trace provider with the exporters
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(stdoutExporter),
		sdktrace.WithBatcher(jaegerExporter),
	)

	//Set the global trace provider and propagator
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
}
