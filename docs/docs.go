// Package docs holds the OpenAPI document served under /swagger.
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
        "/healthz": {
            "get": {"tags": ["System"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}
        },
        "/sessions": {
            "post": {
                "tags": ["Sessions"],
                "summary": "Issue a session token to a roster member",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SessionRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "501": {"description": "Not Implemented"}}
            }
        },
        "/members": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Members"],
                "summary": "List the member roster",
                "responses": {"200": {"description": "OK"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/projects": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Projects"],
                "summary": "List registered projects",
                "responses": {"200": {"description": "OK"}, "500": {"description": "Internal Server Error"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Projects"],
                "summary": "Create a project from the template",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateProjectRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/projects/{projectId}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Projects"],
                "summary": "Trash and unregister a project",
                "parameters": [{"type": "string", "name": "projectId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/projects/{projectId}/progress": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Percentage of done cards",
                "parameters": [{"type": "string", "name": "projectId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/projects/{projectId}/reminders": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Cards due soon, due today or overdue",
                "parameters": [{"type": "string", "name": "projectId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/projects/{projectId}/tasks": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Get the project board",
                "parameters": [{"type": "string", "name": "projectId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "500": {"description": "Internal Server Error"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Create a card",
                "parameters": [
                    {"type": "string", "name": "projectId", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateTaskRequest"}}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Overwrite a card",
                "parameters": [
                    {"type": "string", "name": "projectId", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpdateTaskRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Clear a card row",
                "parameters": [
                    {"type": "string", "name": "projectId", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.DeleteTaskRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/projects/{projectId}/tasks/move": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Move a card to another list",
                "parameters": [
                    {"type": "string", "name": "projectId", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.MoveTaskRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        }
    },
    "definitions": {
        "handler.SessionRequest": {
            "type": "object",
            "required": ["email"],
            "properties": {"email": {"type": "string"}}
        },
        "handler.CreateProjectRequest": {
            "type": "object",
            "properties": {"title": {"type": "string"}, "openDate": {"type": "string"}, "description": {"type": "string"}}
        },
        "handler.CreateTaskRequest": {
            "type": "object",
            "properties": {"title": {"type": "string"}, "listName": {"type": "string"}, "assignee": {"type": "string"}, "dueDate": {"type": "string"}, "description": {"type": "string"}}
        },
        "handler.UpdateTaskRequest": {
            "type": "object",
            "properties": {
                "rowIndex": {"type": "integer"},
                "title": {"type": "string"},
                "status": {"type": "string"},
                "assignee": {"type": "string"},
                "dueDate": {"type": "string"},
                "listName": {"type": "string"},
                "description": {"type": "string"},
                "checklist": {"type": "array", "items": {"$ref": "#/definitions/model.ChecklistItem"}}
            }
        },
        "handler.DeleteTaskRequest": {
            "type": "object",
            "properties": {"rowIndex": {"type": "integer"}}
        },
        "handler.MoveTaskRequest": {
            "type": "object",
            "properties": {"rowIndex": {"type": "integer"}, "fromList": {"type": "string"}, "toList": {"type": "string"}}
        },
        "model.ChecklistItem": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "text": {"type": "string"}, "checked": {"type": "boolean"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Taskboard API",
	Description:      "Team kanban boards stored in Google Sheets.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
