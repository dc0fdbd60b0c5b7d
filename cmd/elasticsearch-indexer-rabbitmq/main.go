package main

import (
	"bytes"
	"context"
	"encoding/gob"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/sanLimbu/tasklist-api/cmd/internal"
	internaldomain "github.com/sanLimbu/tasklist-api/internal"
	"github.com/sanLimbu/tasklist-api/internal/elasticsearch"
	envvar "github.com/sanLimbu/tasklist-api/internal/envvar"
)

const rabbitMQConsumerName = "elasticsearch-indexer"

func main() {
	var env string

	flag.StringVar(&env, "env", "", "Environment Variables filename")
	flag.Parse()

	errC, err := run(env)
	if err != nil {
		log.Fatalf("Couldn't run: %s", err)
	}

	if err := <-errC; err != nil {
		log.Fatalf("Error while running: %s", err)
	}
}

func run(env string) (<-chan error, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "zap.NewProduction")
	}

	if err := envvar.Load(env); err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "envvar.Load")
	}

	vault, err := internal.NewVaultProvider()
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewVaultProvider")
	}

	conf := envvar.New(vault)

	esClient, err := internal.NewElasticSearch(conf)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewElasticSearch")
	}

	rmq, err := internal.NewRabbitMQ(conf)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewRabbitMQ")
	}

	if _, err = internal.NewOTExporter(conf); err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewOTExporter")
	}

	srv := &Server{
		logger: logger,
		rmq:    rmq,
		task:   elasticsearch.NewTask(esClient),
		done:   make(chan struct{}),
	}

	errC := make(chan error, 1)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT)

	go func() {
		<-ctx.Done()
		logger.Info("Shutdown signal received")

		ctxTimeout, cancel := context.WithTimeout(context.Background(), 10*time.Second)

		defer func() {
			logger.Sync()
			rmq.Close()
			stop()
			cancel()
			close(errC)
		}()

		if err := srv.Shutdown(ctxTimeout); err != nil {
			errC <- err
		}

		logger.Info("Shutdown completed")
	}()

	go func() {
		logger.Info("Listening and serving")

		if err := srv.ListenAndServe(); err != nil {
			errC <- err
		}
	}()

	return errC, nil
}

//Server consumes task events and projects them into the search index.
type Server struct {
	logger *zap.Logger
	rmq    *internal.RabbitMQ
	task   *elasticsearch.Task
	done   chan struct{}
}

//ListenAndServe ...
func (s *Server) ListenAndServe() error {
	queue, err := s.rmq.Channel.QueueDeclare(
		"",    //name
		false, //durable
		false, //delete when unused
		true,  //exclusive
		false, //noWait
		nil,   //arguments
	)
	if err != nil {
		return internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "ch.QueueDeclare")
	}

	if err := s.rmq.Channel.QueueBind(
		queue.Name,      //queue name
		"tasks.event.*", //routing key
		"tasks",         //exchange
		false,           //noWait
		nil,             //arguments
	); err != nil {
		return internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "ch.QueueBind")
	}

	msgs, err := s.rmq.Channel.Consume(
		queue.Name,           //queue
		rabbitMQConsumerName, //consumer
		false,                //auto-ack
		false,                //exclusive
		false,                //no-local
		false,                //no-wait
		nil,                  //args
	)
	if err != nil {
		return internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "ch.Consume")
	}

	go func() {
		for msg := range msgs {
			s.consume(msg)
		}

		s.logger.Info("No more messages to consume. Exiting.")
		s.done <- struct{}{}
	}()

	return nil
}

func (s *Server) consume(msg amqp.Delivery) {
	s.logger.Info("Received message", zap.String("routing_key", msg.RoutingKey))

	var task internaldomain.Task

	if err := gob.NewDecoder(bytes.NewReader(msg.Body)).Decode(&task); err != nil {
		s.logger.Info("Ignoring invalid message", zap.Error(err))
		msg.Nack(false, false)
		return
	}

	ok := false

	switch msg.RoutingKey {
	case "tasks.event.created", "tasks.event.updated":
		if err := s.task.Index(context.Background(), task); err == nil {
			ok = true
		}
	case "tasks.event.deleted":
		if err := s.task.Delete(context.Background(), task.ID); err == nil {
			ok = true
		}
	}

	if ok {
		s.logger.Info("Consumed", zap.String("routing_key", msg.RoutingKey))
		msg.Ack(false)
	} else {
		msg.Nack(false, true)
	}
}

//Shutdown ...
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")

	if err := s.rmq.Channel.Cancel(rabbitMQConsumerName, false); err != nil {
		return internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "ch.Cancel")
	}

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("context.Done: %w", ctx.Err())
		case <-s.done:
			return nil
		}
	}
}
