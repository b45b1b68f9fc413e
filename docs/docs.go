// Package docs registers the OpenAPI document served under /swagger.
// It mirrors the handler annotations; docs_test.go fails when they drift.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Trigonal Technology",
            "url": "https://trigonaltechnology.com"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Returns the API title and version",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "API identity",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/health.RootResponse"}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Liveness probe used by container health checks",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/health.Response"}
                    }
                }
            }
        },
        "/api/consult": {
            "post": {
                "description": "Stores a consult form submission and notifies the architects",
                "consumes": ["application/json", "application/x-www-form-urlencoded", "multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["consult"],
                "summary": "Submit a consultation brief",
                "parameters": [
                    {
                        "description": "Consult form",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/consult.SubmitRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/consult.SubmitResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/consult.ValidationResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/api/admin/briefs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Admin-only listing, newest first, optionally filtered by status",
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List consultation briefs",
                "parameters": [
                    {"type": "string", "description": "NEW, REVIEWING or ARCHIVED", "name": "status", "in": "query"},
                    {"type": "integer", "description": "Page size (default 20, max 100)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Items to skip", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/admin.ListBriefsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/api/admin/briefs/stream": {
            "get": {
                "description": "Upgrades to a WebSocket that pushes brief_created and brief_updated events",
                "tags": ["admin"],
                "summary": "Live feed of consultation briefs",
                "parameters": [
                    {"type": "string", "description": "Admin JWT", "name": "token", "in": "query", "required": true}
                ],
                "responses": {
                    "101": {"description": "Switching Protocols"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/api/admin/briefs/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Get a consultation brief",
                "parameters": [
                    {"type": "string", "description": "Brief ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/briefs.Brief"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/api/admin/briefs/{id}/status": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Change a brief's triage status",
                "parameters": [
                    {"type": "string", "description": "Brief ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "New status",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/admin.UpdateStatusRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/briefs.Brief"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "admin.ListBriefsResponse": {
            "type": "object",
            "properties": {
                "briefs": {"type": "array", "items": {"$ref": "#/definitions/briefs.Brief"}},
                "pagination": {"$ref": "#/definitions/pagination.Meta"}
            }
        },
        "admin.UpdateStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string", "enum": ["NEW", "REVIEWING", "ARCHIVED"]}
            }
        },
        "briefs.Brief": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "email": {"type": "string"},
                "existingSystems": {"type": "array", "items": {"type": "string"}},
                "fullName": {"type": "string"},
                "hl7Fhir": {"type": "boolean"},
                "id": {"type": "string"},
                "nepalDirective2081": {"type": "boolean"},
                "organization": {"type": "string"},
                "primaryInterest": {"type": "string"},
                "projectLocation": {"type": "string"},
                "status": {"type": "string", "enum": ["NEW", "REVIEWING", "ARCHIVED"]},
                "technicalBrief": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "consult.SubmitRequest": {
            "type": "object",
            "required": ["email", "fullName", "organization", "primaryInterest", "projectLocation"],
            "properties": {
                "email": {"type": "string"},
                "existingSystems": {"type": "array", "items": {"type": "string"}},
                "fullName": {"type": "string", "minLength": 2},
                "hl7Fhir": {"type": "boolean"},
                "nepalDirective2081": {"type": "boolean"},
                "organization": {"type": "string", "minLength": 2},
                "primaryInterest": {
                    "type": "string",
                    "enum": ["Interoperability Architecture", "Enterprise EMR Deployment", "AI & Diagnostic Intelligence"]
                },
                "projectLocation": {"type": "string", "enum": ["Nepal", "India", "Middle East", "Africa", "Other"]},
                "technicalBrief": {"type": "string", "maxLength": 1000}
            }
        },
        "consult.SubmitResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "consult.ValidationResponse": {
            "type": "object",
            "properties": {
                "errors": {
                    "type": "object",
                    "additionalProperties": {"type": "array", "items": {"type": "string"}}
                },
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "errors.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {"type": "string"},
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "health.Response": {
            "type": "object",
            "properties": {
                "service": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "health.RootResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "pagination.Meta": {
            "type": "object",
            "properties": {
                "has_more": {"type": "boolean"},
                "limit": {"type": "integer"},
                "offset": {"type": "integer"},
                "total": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Admin JWT. Format: Bearer {token}",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "Trigonal API",
	Description:      "Backend for the Trigonal Technology website",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
