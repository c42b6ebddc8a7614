// Package api holds the swagger documentation of the API that is served at /docs.
package api

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": ["General"],
                "summary": "API root",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "produces": ["application/json"],
                "tags": ["General"],
                "summary": "Get health",
                "responses": {"200": {"description": "OK"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": ["General"],
                "summary": "API version",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1": {
            "get": {
                "description": "Returns general information about the v1 API",
                "tags": ["v1"],
                "summary": "v1 API",
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "description": "Permanently deletes all sessions and their transactions",
                "tags": ["v1"],
                "summary": "Delete everything",
                "parameters": [
                    {"type": "string", "description": "Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'", "name": "confirm", "in": "query"}
                ],
                "responses": {"204": {"description": "No Content"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/v1/sessions": {
            "get": {
                "description": "Returns a list of all sessions that have not expired",
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Get sessions",
                "responses": {"200": {"description": "OK"}, "500": {"description": "Internal Server Error"}}
            },
            "post": {
                "description": "Creates a new session. All fields are optional, an empty body creates a session with the default categories",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Create session",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/v1/sessions/{id}": {
            "get": {
                "description": "Returns a specific session",
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Get session",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "description": "Updates an existing session. Only values to be updated need to be specified",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Update session",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}
            },
            "delete": {
                "description": "Discards a session together with its transactions",
                "tags": ["Sessions"],
                "summary": "Delete session",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/sessions/{id}/allocation": {
            "put": {
                "description": "Stores manually entered percentages for the categories of the session",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Budget goals"],
                "summary": "Submit percentages",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}
            }
        },
        "/v1/sessions/{id}/experiment": {
            "post": {
                "description": "Uses the entered percentages as budget goals, unless goals exist already, and allows adjusting them",
                "produces": ["application/json"],
                "tags": ["Budget goals"],
                "summary": "Start experiment",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}
            }
        },
        "/v1/sessions/{id}/adjustments": {
            "post": {
                "description": "Sets the goal of one category and redistributes the difference over all other categories",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Budget goals"],
                "summary": "Adjust budget goal",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}
            }
        },
        "/v1/sessions/{id}/reset": {
            "post": {
                "description": "Discards the entered percentages and the budget goals",
                "produces": ["application/json"],
                "tags": ["Budget goals"],
                "summary": "Reset session",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/sessions/{id}/transactions": {
            "get": {
                "description": "Returns the transactions of the session ordered by date",
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "Get transactions",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "post": {
                "description": "Replaces the transactions of the session with the ones in the uploaded CSV file",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "Upload transactions",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true},
                    {"type": "file", "description": "File to import", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/sessions/{id}/summary": {
            "get": {
                "description": "Returns the total spending and the spending per category",
                "produces": ["application/json"],
                "tags": ["Insights"],
                "summary": "Get summary",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/sessions/{id}/time-series": {
            "get": {
                "description": "Returns the spending per calendar day",
                "produces": ["application/json"],
                "tags": ["Insights"],
                "summary": "Get time series",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/sessions/{id}/advice": {
            "get": {
                "description": "Compares the share of every category with its recommended maximum",
                "produces": ["application/json"],
                "tags": ["Insights"],
                "summary": "Get advice",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/sessions/{id}/comparison": {
            "get": {
                "description": "Compares the actual share of every category with its budget goal",
                "produces": ["application/json"],
                "tags": ["Insights"],
                "summary": "Get comparison",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
