// Package docs registers the gateway's OpenAPI description with swag so that
// echo-swagger can serve it under /swagger/.
//
// Regenerate with: swag init -g cmd/portal/main.go -o docs
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/session": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current session",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/error": {
            "delete": {
                "tags": ["auth"],
                "summary": "Dismiss auth error",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/doctors": {
            "get": {
                "produces": ["application/json"],
                "tags": ["doctor"],
                "summary": "Doctor directory",
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/doctor/profile": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["doctor"],
                "summary": "Create doctor profile",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/doctor/slots": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["doctor"],
                "summary": "Create slot",
                "responses": {
                    "201": {"description": "Created"},
                    "303": {"description": "Profile setup required"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/doctor/slots/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["doctor"],
                "summary": "Delete slot",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/doctor/appointments/{id}/status": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["doctor"],
                "summary": "Update appointment status",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/patient/profile": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["patient"],
                "summary": "Create patient profile",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/patient/appointments": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["patient"],
                "summary": "Book appointment",
                "responses": {
                    "201": {"description": "Created"},
                    "303": {"description": "Profile setup required"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/patient/appointments/{id}/cancel": {
            "post": {
                "produces": ["application/json"],
                "tags": ["patient"],
                "summary": "Cancel appointment",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/admin/doctors": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List doctors",
                "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Create doctor",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/admin/doctors/{id}": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Update doctor",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete doctor",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/admin/patients": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List patients",
                "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Create patient",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/admin/patients/{id}": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Update patient",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete patient",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/admin/appointments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "All appointments",
                "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/errors/{slice}": {
            "delete": {
                "tags": ["state"],
                "summary": "Dismiss a slice error",
                "parameters": [{"type": "string", "name": "slice", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/chat": {
            "get": {
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Chat transcript",
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Reset chat",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/chat/messages": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Send chat message",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
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
	Title:            "Appointment Portal Gateway",
	Description:      "Session, guard and resource-slice gateway in front of the hospital appointment API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
