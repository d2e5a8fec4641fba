// Package docs registers the OpenAPI document for the viewer endpoints.
package docs

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
        "/beestation": {
            "get": {
                "description": "Paginated HTML table of beestation status messages, newest first",
                "produces": ["text/html"],
                "tags": ["views"],
                "summary": "Beestation status log",
                "parameters": [
                    {"type": "integer", "description": "Page parameter; omit for the newest records", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Records per page (default 20)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "HTML document", "schema": {"type": "string"}},
                    "400": {"description": "Invalid parameter", "schema": {"type": "string"}},
                    "500": {"description": "Query failed", "schema": {"type": "string"}},
                    "503": {"description": "Record store unavailable", "schema": {"type": "string"}}
                }
            }
        },
        "/dht22": {
            "get": {
                "description": "Paginated HTML table of dht22 readings, newest first",
                "produces": ["text/html"],
                "tags": ["views"],
                "summary": "Temperature/humidity log",
                "parameters": [
                    {"type": "integer", "description": "Page parameter; omit for the newest records", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Records per page (default 20)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "HTML document", "schema": {"type": "string"}},
                    "400": {"description": "Invalid parameter", "schema": {"type": "string"}},
                    "500": {"description": "Query failed", "schema": {"type": "string"}},
                    "503": {"description": "Record store unavailable", "schema": {"type": "string"}}
                }
            }
        },
        "/v1/health": {
            "get": {
                "description": "Pings the record store and, when configured, redis",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/resources.HealthStatus"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/resources.HealthStatus"}}
                }
            }
        }
    },
    "definitions": {
        "resources.HealthStatus": {
            "type": "object",
            "properties": {
                "database": {"type": "string"},
                "redis": {"type": "string"},
                "status": {"type": "string"},
                "version": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Beestation Log Viewer",
	Description:      "Paginated HTML views over the dht22 and beestation log tables.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
