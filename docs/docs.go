// Package docs holds the OpenAPI description served at /swagger. Regenerate
// with `swag init -g cmd/portfolio/main.go` after changing handler
// annotations.
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
        "/api/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Exchange credentials for an access and refresh token pair",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/api/auth/refresh": {
            "post": {
                "tags": ["Auth"],
                "summary": "Exchange a refresh token for a new token pair",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["Auth"],
                "summary": "Current authenticated user",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/api/projects": {
            "get": {
                "tags": ["Projects"],
                "summary": "List projects, optionally filtered by featured flag or category",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "featured", "in": "query"},
                    {"type": "string", "name": "category", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["Projects"],
                "summary": "Create a project",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/api/projects/{id}": {
            "put": {
                "security": [{"Bearer": []}],
                "tags": ["Projects"],
                "summary": "Update a project",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "security": [{"Bearer": []}],
                "tags": ["Projects"],
                "summary": "Delete a project",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/skills": {
            "get": {
                "tags": ["Skills"],
                "summary": "List skill categories",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["Skills"],
                "summary": "Create a skill category",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/skills/{id}": {
            "put": {
                "security": [{"Bearer": []}],
                "tags": ["Skills"],
                "summary": "Update a skill category",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "security": [{"Bearer": []}],
                "tags": ["Skills"],
                "summary": "Delete a skill category",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/experiences": {
            "get": {
                "tags": ["Experiences"],
                "summary": "List employment history",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["Experiences"],
                "summary": "Create an experience entry",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/experiences/{id}": {
            "put": {
                "security": [{"Bearer": []}],
                "tags": ["Experiences"],
                "summary": "Update an experience entry",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "security": [{"Bearer": []}],
                "tags": ["Experiences"],
                "summary": "Delete an experience entry",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/testimonials": {
            "get": {
                "tags": ["Testimonials"],
                "summary": "List testimonials, optionally only active ones",
                "parameters": [{"type": "string", "name": "active", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["Testimonials"],
                "summary": "Create a testimonial",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/testimonials/{id}": {
            "put": {
                "security": [{"Bearer": []}],
                "tags": ["Testimonials"],
                "summary": "Update a testimonial",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "security": [{"Bearer": []}],
                "tags": ["Testimonials"],
                "summary": "Delete a testimonial",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/contact": {
            "post": {
                "tags": ["Contact"],
                "summary": "Submit a contact form message",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"}
                }
            },
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["Contact"],
                "summary": "List contact submissions, newest first",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/contact/{id}": {
            "delete": {
                "security": [{"Bearer": []}],
                "tags": ["Contact"],
                "summary": "Delete a contact submission",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/contact/{id}/read": {
            "put": {
                "security": [{"Bearer": []}],
                "tags": ["Contact"],
                "summary": "Set the read flag on a submission",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/profile": {
            "get": {
                "tags": ["Profile"],
                "summary": "Public profile of the site owner",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/profile/attributes": {
            "put": {
                "security": [{"Bearer": []}],
                "tags": ["Profile"],
                "summary": "Update the owner profile attributes",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/metrics": {
            "get": {
                "tags": ["Metrics"],
                "summary": "Content and inbox gauges in Prometheus exposition format",
                "produces": ["text/plain"],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
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
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Portfolio API",
	Description:      "Backend for the portfolio website: public content endpoints and an authenticated admin dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
