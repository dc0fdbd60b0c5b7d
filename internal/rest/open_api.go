package rest

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/ghodss/yaml"
	"github.com/go-chi/chi/v5"
)

//NewOpenAPI3 instantiates the OpenAPI specification for this service.
func NewOpenAPI3() openapi3.T {
	swagger := openapi3.T{
		OpenAPI: "3.0.0",
		Info: &openapi3.Info{
			Title:       "Tasklist API",
			Description: "REST APIs used for interacting with the Tasklist Service",
			Version:     "0.1.0",
			License: &openapi3.License{
				Name: "MIT",
				URL:  "https://opensource.org/licenses/MIT",
			},
		},
		Servers: openapi3.Servers{
			&openapi3.Server{
				Description: "Local development",
				URL:         "http://0.0.0.0:9234",
			},
		},
	}

	prioritySchema := func() *openapi3.Schema {
		return openapi3.NewIntegerSchema().WithMin(1).WithMax(3)
	}

	taskSchema := openapi3.NewObjectSchema().WithProperties(map[string]*openapi3.Schema{
		"id":          openapi3.NewInt64Schema(),
		"title":       openapi3.NewStringSchema(),
		"description": openapi3.NewStringSchema(),
		"priority":    prioritySchema(),
		"due_date":    openapi3.NewDateTimeSchema(),
		"completed":   openapi3.NewBoolSchema(),
	})

	swagger.Components.Schemas = openapi3.Schemas{
		"Task": openapi3.NewSchemaRef("", taskSchema),
	}

	swagger.Components.RequestBodies = openapi3.RequestBodies{
		"CreateTaskRequest": &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().
				WithDescription("Request used for creating a task.").
				WithRequired(true).
				WithJSONSchema(openapi3.NewObjectSchema().WithProperties(map[string]*openapi3.Schema{
					"title":       openapi3.NewStringSchema(),
					"description": openapi3.NewStringSchema(),
					"priority":    prioritySchema(),
					"due_date":    openapi3.NewDateTimeSchema(),
				})),
		},
		"UpdateTaskRequest": &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().
				WithDescription("Request used for updating a task, all fields are optional.").
				WithRequired(true).
				WithJSONSchema(openapi3.NewObjectSchema().WithProperties(map[string]*openapi3.Schema{
					"title":       openapi3.NewStringSchema(),
					"description": openapi3.NewStringSchema(),
					"priority":    prioritySchema(),
					"due_date":    openapi3.NewDateTimeSchema(),
					"completed":   openapi3.NewBoolSchema(),
				})),
		},
	}

	tasksSchema := openapi3.NewArraySchema()
	tasksSchema.Items = &openapi3.SchemaRef{Ref: "#/components/schemas/Task"}

	searchSchema := openapi3.NewObjectSchema()
	searchSchema.Properties = openapi3.Schemas{
		"tasks": openapi3.NewSchemaRef("", tasksSchema),
		"total": openapi3.NewSchemaRef("", openapi3.NewInt64Schema()),
	}

	swagger.Components.Responses = openapi3.Responses{
		"ErrorResponse": &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Response when errors happen.").
				WithJSONSchema(openapi3.NewObjectSchema().
					WithProperty("error", openapi3.NewStringSchema())),
		},
		"NotFoundResponse": &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Response when the task does not exist.").
				WithJSONSchema(openapi3.NewObjectSchema().
					WithProperty("detail", openapi3.NewStringSchema())),
		},
		"TaskResponse": &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Response returning a task.").
				WithJSONSchemaRef(&openapi3.SchemaRef{Ref: "#/components/schemas/Task"}),
		},
		"TasksResponse": &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Response returning a collection of tasks.").
				WithJSONSchema(tasksSchema),
		},
		"DeleteTaskResponse": &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Response confirming a deletion.").
				WithJSONSchema(openapi3.NewObjectSchema().
					WithProperty("message", openapi3.NewStringSchema())),
		},
		"SearchTasksResponse": &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Response returning the search results.").
				WithJSONSchema(searchSchema),
		},
	}

	idParameter := &openapi3.ParameterRef{
		Value: openapi3.NewPathParameter("id").
			WithSchema(openapi3.NewInt64Schema()),
	}

	swagger.Paths = openapi3.Paths{
		"/tasks": &openapi3.PathItem{
			Post: &openapi3.Operation{
				OperationID: "CreateTask",
				RequestBody: &openapi3.RequestBodyRef{
					Ref: "#/components/requestBodies/CreateTaskRequest",
				},
				Responses: openapi3.Responses{
					"201": &openapi3.ResponseRef{Ref: "#/components/responses/TaskResponse"},
					"400": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
			Get: &openapi3.Operation{
				OperationID: "ListTasks",
				Parameters: openapi3.Parameters{
					&openapi3.ParameterRef{
						Value: openapi3.NewQueryParameter("completed").
							WithSchema(openapi3.NewBoolSchema()),
					},
					&openapi3.ParameterRef{
						Value: openapi3.NewQueryParameter("priority").
							WithSchema(prioritySchema()),
					},
				},
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{Ref: "#/components/responses/TasksResponse"},
					"400": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
		},
		"/tasks/{id}": &openapi3.PathItem{
			Get: &openapi3.Operation{
				OperationID: "ReadTask",
				Parameters:  openapi3.Parameters{idParameter},
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{Ref: "#/components/responses/TaskResponse"},
					"404": &openapi3.ResponseRef{Ref: "#/components/responses/NotFoundResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
			Put: &openapi3.Operation{
				OperationID: "UpdateTask",
				Parameters:  openapi3.Parameters{idParameter},
				RequestBody: &openapi3.RequestBodyRef{
					Ref: "#/components/requestBodies/UpdateTaskRequest",
				},
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{Ref: "#/components/responses/TaskResponse"},
					"400": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
					"404": &openapi3.ResponseRef{Ref: "#/components/responses/NotFoundResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
			Delete: &openapi3.Operation{
				OperationID: "DeleteTask",
				Parameters:  openapi3.Parameters{idParameter},
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{Ref: "#/components/responses/DeleteTaskResponse"},
					"404": &openapi3.ResponseRef{Ref: "#/components/responses/NotFoundResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
		},
		"/search": &openapi3.PathItem{
			Get: &openapi3.Operation{
				OperationID: "SearchTasks",
				Parameters: openapi3.Parameters{
					&openapi3.ParameterRef{
						Value: openapi3.NewQueryParameter("text").
							WithSchema(openapi3.NewStringSchema()),
					},
					&openapi3.ParameterRef{
						Value: openapi3.NewQueryParameter("priority").
							WithSchema(prioritySchema()),
					},
					&openapi3.ParameterRef{
						Value: openapi3.NewQueryParameter("completed").
							WithSchema(openapi3.NewBoolSchema()),
					},
					&openapi3.ParameterRef{
						Value: openapi3.NewQueryParameter("from").
							WithSchema(openapi3.NewInt64Schema()),
					},
					&openapi3.ParameterRef{
						Value: openapi3.NewQueryParameter("size").
							WithSchema(openapi3.NewInt64Schema()),
					},
				},
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{Ref: "#/components/responses/SearchTasksResponse"},
					"400": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
		},
	}

	return swagger
}

//RegisterOpenAPI connects the OpenAPI endpoints to the router
func RegisterOpenAPI(r chi.Router) {
	swagger := NewOpenAPI3()

	r.Get("/openapi3.json", func(w http.ResponseWriter, r *http.Request) {
		renderResponse(w, &swagger, http.StatusOK)
	})

	r.Get("/openapi3.yaml", func(w http.ResponseWriter, r *http.Request) {
		data, err := yaml.Marshal(&swagger)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/x-yaml")
		_, _ = w.Write(data)
	})
}
