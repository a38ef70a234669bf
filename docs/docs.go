// Package docs registers the OpenAPI document served at /swagger/*.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "User registration details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/respond.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/respond.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/respond.Envelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/respond.Envelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Update current user profile",
                "parameters": [
                    {"description": "Profile fields", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateProfileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/respond.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            }
        },
        "/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/respond.Envelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            }
        },
        "/venues": {
            "get": {
                "produces": ["application/json"],
                "tags": ["venues"],
                "summary": "List venues",
                "parameters": [
                    {"type": "string", "description": "Matches name, description or address", "name": "search", "in": "query"},
                    {"minimum": 1, "type": "integer", "description": "Page number", "name": "page", "in": "query"},
                    {"maximum": 100, "minimum": 1, "type": "integer", "description": "Page size", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["venues"],
                "summary": "Create a venue",
                "parameters": [
                    {"description": "Venue", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createVenueRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/respond.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            }
        },
        "/venues/mine": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["venues"],
                "summary": "Current user's venue",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/respond.Envelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            }
        },
        "/venues/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["venues"],
                "summary": "Venue details",
                "parameters": [{"type": "string", "description": "Venue ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/respond.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["venues"],
                "summary": "Update a venue",
                "parameters": [
                    {"type": "string", "description": "Venue ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateVenueRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/respond.Envelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["venues"],
                "summary": "Delete a venue and its events",
                "parameters": [{"type": "string", "description": "Venue ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/respond.Envelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            }
        },
        "/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List events",
                "parameters": [
                    {"type": "string", "name": "category", "in": "query"},
                    {"type": "string", "description": "Defaults to PUBLISHED", "name": "status", "in": "query"},
                    {"type": "string", "description": "YYYY-MM-DD", "name": "date", "in": "query"},
                    {"type": "string", "name": "venueId", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Create an event",
                "parameters": [
                    {"description": "Event", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createEventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/respond.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.Envelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            }
        },
        "/events/today": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Events starting today",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            }
        },
        "/events/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Event details",
                "parameters": [{"type": "string", "description": "Event ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/respond.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Update an event",
                "parameters": [
                    {"type": "string", "description": "Event ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateEventRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/respond.Envelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Delete an event",
                "parameters": [{"type": "string", "description": "Event ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/respond.Envelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            }
        },
        "/magazine/issues": {
            "get": {
                "produces": ["application/json"],
                "tags": ["magazine"],
                "summary": "Published magazine issues",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/respond.Envelope"}}}
            }
        },
        "/magazine/issues/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["magazine"],
                "summary": "Magazine issue with articles",
                "parameters": [{"type": "string", "description": "Issue ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/respond.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            }
        },
        "/playlists": {
            "get": {
                "produces": ["application/json"],
                "tags": ["playlists"],
                "summary": "Curated playlists",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/respond.Envelope"}}}
            }
        },
        "/playlists/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["playlists"],
                "summary": "Playlist details",
                "parameters": [{"type": "string", "description": "Playlist ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/respond.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.Envelope"}}
                }
            }
        },
        "/advertisements": {
            "get": {
                "produces": ["application/json"],
                "tags": ["advertisements"],
                "summary": "Advertisements",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/respond.Envelope"}}}
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.livenessResponse"}}}
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.readinessResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.readinessResponse"}}
                }
            }
        }
    },
    "definitions": {
        "respond.Envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "error": {"type": "string"},
                "details": {"type": "array", "items": {"$ref": "#/definitions/respond.FieldError"}},
                "message": {"type": "string"}
            }
        },
        "respond.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handler.registerRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "name": {"type": "string"},
                "role": {"type": "string", "enum": ["ADMIN", "VENUE", "ARTIST", "READER"]}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.updateProfileRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "minLength": 1},
                "bio": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"}
            }
        },
        "handler.createVenueRequest": {
            "type": "object",
            "required": ["name", "address"],
            "properties": {
                "name": {"type": "string", "maxLength": 200, "minLength": 1},
                "address": {"type": "string"},
                "phone": {"type": "string"},
                "website": {"type": "string"},
                "description": {"type": "string"},
                "capacity": {"type": "integer", "minimum": 1},
                "amenities": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.updateVenueRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "maxLength": 200, "minLength": 1},
                "address": {"type": "string"},
                "phone": {"type": "string"},
                "website": {"type": "string"},
                "description": {"type": "string"},
                "capacity": {"type": "integer", "minimum": 1},
                "amenities": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.createEventRequest": {
            "type": "object",
            "required": ["title", "description", "startTime", "endTime", "category", "venueId"],
            "properties": {
                "title": {"type": "string", "maxLength": 200, "minLength": 1},
                "description": {"type": "string"},
                "startTime": {"type": "string"},
                "endTime": {"type": "string"},
                "price": {"type": "number", "minimum": 0},
                "category": {"type": "string", "enum": ["LIVE_MUSIC", "STANDUP_COMEDY", "CLASSICAL_MUSIC", "THEATRE", "ART_GALLERY", "LITERATURE", "RESTAURANT_EVENT"]},
                "venueId": {"type": "string"},
                "status": {"type": "string", "enum": ["DRAFT", "PUBLISHED", "CANCELLED"]}
            }
        },
        "handler.updateEventRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "maxLength": 200, "minLength": 1},
                "description": {"type": "string"},
                "startTime": {"type": "string"},
                "endTime": {"type": "string"},
                "price": {"type": "number", "minimum": 0},
                "category": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "handler.livenessResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "timestamp": {"type": "string"},
                "environment": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "handler.readinessResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "dependencies": {"type": "object", "additionalProperties": {"type": "object"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Stratford Music Platform API",
	Description:      "Venues, events and editorial content for the Stratford live-events platform.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
