// Package swagger registers the OpenAPI document of the governance API.
package swagger

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
        "/plans": {
            "get": {
                "description": "Lists the networks configured in the catalog.",
                "produces": ["application/json"],
                "tags": ["plans"],
                "summary": "List Networks",
                "responses": {
                    "200": {
                        "description": "Configured networks",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/plans/{network}": {
            "get": {
                "description": "Reads live state and returns the pending administrative commands for a network, in submission order.",
                "produces": ["application/json"],
                "tags": ["plans"],
                "summary": "Dry-Run Report",
                "parameters": [
                    {"type": "string", "description": "Network name (e.g. bscmainnet)", "name": "network", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Plan report", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Unknown network", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Network not configured", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "422": {"description": "Configuration error", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "502": {"description": "Chain inspection failed", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/plans/{network}/payload": {
            "get": {
                "description": "Encodes the pending commands as a timelock proposal (targets, values, signatures, calldatas).",
                "produces": ["application/json"],
                "tags": ["plans"],
                "summary": "Timelock Proposal",
                "parameters": [
                    {"type": "string", "description": "Network name", "name": "network", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Proposal payload", "schema": {"$ref": "#/definitions/governance.Proposal"}},
                    "400": {"description": "Unknown network", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "502": {"description": "Chain inspection failed", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/plans/{network}/history": {
            "get": {
                "description": "Returns recorded plan runs for a network, newest first.",
                "produces": ["application/json"],
                "tags": ["plans"],
                "summary": "Plan History",
                "parameters": [
                    {"type": "string", "description": "Network name", "name": "network", "in": "path", "required": true},
                    {"type": "integer", "description": "Maximum records (default 20, max 100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Stored records", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "503": {"description": "History store not configured", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/plans/{network}/record": {
            "post": {
                "description": "Computes the plan for a network and stores it in the history table.",
                "produces": ["application/json"],
                "tags": ["plans"],
                "summary": "Record Plan",
                "parameters": [
                    {"type": "string", "description": "Network name", "name": "network", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Stored record", "schema": {"$ref": "#/definitions/models.PlanRecord"}},
                    "400": {"description": "Unknown network", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "503": {"description": "History store not configured", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "governance.Proposal": {
            "type": "object",
            "properties": {
                "targets": {"type": "array", "items": {"type": "string"}},
                "values": {"type": "array", "items": {"type": "string"}},
                "signatures": {"type": "array", "items": {"type": "string"}},
                "calldatas": {"type": "array", "items": {"type": "string"}},
                "meta": {"type": "string"}
            }
        },
        "models.PlanRecord": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "network": {"type": "string"},
                "live": {"type": "boolean"},
                "access_control": {"type": "integer"},
                "ownership": {"type": "integer"},
                "price_feeds": {"type": "integer"},
                "total": {"type": "integer"},
                "payload": {"type": "object"},
                "created_at": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Nomo Governance API",
	Description:      "Dry-run reports and timelock proposals for the oracle governance of each network.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
