// Package docs registers the swagger document of the binknap API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "BSD License",
            "url": "https://opensource.org/license/bsd-2-clause"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/frontier": {
            "post": {
                "description": "Enumerates the efficient frontier of a binary-weight knapsack instance.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["frontier"],
                "summary": "Efficient frontier",
                "parameters": [
                    {
                        "description": "instance and options",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/controllers.frontierRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.frontierResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.itemRequest": {
            "type": "object",
            "properties": {
                "profit": {"type": "integer", "minimum": 0},
                "w1": {"type": "integer", "enum": [0, 1]},
                "w2": {"type": "integer", "enum": [0, 1]}
            }
        },
        "controllers.frontierRequest": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/controllers.itemRequest"}},
                "classify": {"type": "string", "enum": ["strict", "literal"]},
                "cut": {"type": "string", "enum": ["none", "zone", "strict"]},
                "max_points": {"type": "integer", "minimum": 0}
            }
        },
        "controllers.pointResponse": {
            "type": "object",
            "properties": {
                "row": {"type": "integer"},
                "col": {"type": "integer"},
                "profit": {"type": "integer"},
                "selection": {"type": "string"}
            }
        },
        "controllers.frontierResponse": {
            "type": "object",
            "properties": {
                "num_right": {"type": "integer"},
                "num_up": {"type": "integer"},
                "num_diagonal": {"type": "integer"},
                "emitted": {"type": "integer"},
                "truncated": {"type": "boolean"},
                "points": {"type": "array", "items": {"$ref": "#/definitions/controllers.pointResponse"}}
            }
        },
        "controllers.errorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:6060",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "binknap API",
	Description:      "Pareto frontier enumeration for binary-weight 0-1 knapsack instances.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
