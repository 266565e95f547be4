// Package docs registers the swagger document served at /swagger.
// Regenerate with `swag init -g cmd/api/main.go`.
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
        "/chat": {
            "post": {
                "description": "Runs one assistant turn. Without session_id a new session is created. chat_history, when present, replaces the stored history for this turn.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Conversation"],
                "summary": "Send a chat message",
                "parameters": [
                    {
                        "description": "Chat message",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.chatReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.chatResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/sessions/{id}": {
            "get": {
                "description": "Returns the stored history and trip draft of a session.",
                "produces": ["application/json"],
                "tags": ["Conversation"],
                "summary": "Get a session",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.sessionResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "delete": {
                "description": "Forgets the history and draft of a session. Unknown ids succeed.",
                "produces": ["application/json"],
                "tags": ["Conversation"],
                "summary": "Clear a session",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {"200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}}
            }
        }
    },
    "definitions": {
        "http.messageReq": {
            "type": "object",
            "required": ["role"],
            "properties": {
                "role": {"type": "string", "enum": ["user", "assistant", "system"]},
                "content": {"type": "string"}
            }
        },
        "http.chatReq": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "session_id": {"type": "string", "maxLength": 128},
                "chat_history": {"type": "array", "items": {"$ref": "#/definitions/http.messageReq"}}
            }
        },
        "http.chatResp": {
            "type": "object",
            "properties": {
                "response": {"type": "string"},
                "session_id": {"type": "string"}
            }
        },
        "http.messageResp": {
            "type": "object",
            "properties": {
                "role": {"type": "string"},
                "content": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "http.sessionResp": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "history": {"type": "array", "items": {"$ref": "#/definitions/http.messageResp"}},
                "draft": {"$ref": "#/definitions/model.DraftPackage"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "model.DraftPackage": {
            "type": "object",
            "properties": {
                "destination": {"type": "string"},
                "dates": {},
                "travelers": {"type": "integer"},
                "budget": {},
                "preferences": {"type": "object", "additionalProperties": true},
                "activities": {"type": "array", "items": {}},
                "created_at": {"type": "string"},
                "last_modified": {"type": "string"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8000",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "AI Travel Assistant API",
	Description:      "Conversational travel planning: intent routing, trip drafts, mock flight/hotel search and destination info.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
