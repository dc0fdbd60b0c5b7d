// Package doc describes the architecture of the Task List system using the C4 model,
// render it with `mdl serve github.com/sanLimbu/tasklist-api/internal/doc`.
package doc

import (
	. "goa.design/model/dsl"
)

var _ = Design("Task List System", "CRUD API for managing personal tasks.", func() {
	var System = SoftwareSystem("Task List System", "Allows users to create, update, search and complete tasks.", func() {
		URL("https://github.com/sanLimbu/tasklist-api")

		database := Container("PostgreSQL", "Stores task records.", "PostgreSQL 14", func() {
			Tag("Database")
		})

		cache := Container("Memcached", "Caches task records read from PostgreSQL.", "Memcached", func() {
			Tag("Database")
		})

		search := Container("Elasticsearch", "Indexes tasks for full text search.", "Elasticsearch 7", func() {
			Tag("Database")
		})

		broker := Container("Message Broker", "Distributes task events.", "Kafka, RabbitMQ or Redis", func() {
			Tag("Queue")
		})

		restServer := Container("REST Server", "Serves the task HTTP API.", "Go", func() {
			Uses(database, "Reads from and writes to", "pgx", Synchronous)
			Uses(cache, "Reads from and writes to", "gomemcache", Synchronous)
			Uses(search, "Searches", "HTTPS", Synchronous)
			Uses(broker, "Publishes task events to", Asynchronous)
		})

		Container("Elasticsearch Indexer", "Projects task events into the search index.", "Go", func() {
			Uses(broker, "Consumes task events from", Asynchronous)
			Uses(search, "Indexes and deletes documents in", "HTTPS", Synchronous)
		})

		Person("User", "A person managing their tasks.", func() {
			Uses(restServer, "Makes requests to", "HTTPS/JSON", Synchronous)
			Tag("person")
		})
	})

	Views(func() {
		SystemContextView(System, "Task List System", func() {
			AddDefault()
			EnterpriseBoundaryVisible()
		})

		ContainerView(System, "Containers", func() {
			AddDefault()
		})

		Styles(func() {
			ElementStyle("person", func() {
				Shape(ShapePerson)
			})
			ElementStyle("Database", func() {
				Shape(ShapeCylinder)
			})
			ElementStyle("Queue", func() {
				Shape(ShapePipe)
			})
		})
	})
})
