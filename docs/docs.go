// Package docs registra la documentación OpenAPI de la API para swag/http-swagger.
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
        "/owners": {
            "get": {
                "produces": ["application/json"],
                "tags": ["owners"],
                "summary": "Listar dueños",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/owners.Response"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["owners"],
                "summary": "Crear dueño",
                "parameters": [
                    {"description": "Datos del dueño", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/owners.ownerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/owners.Response"}},
                    "400": {"description": "invalid json", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/owners/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["owners"],
                "summary": "Buscar dueños",
                "description": "Substring case-insensitive sobre nombre, apellido o email. Sin query devuelve todos.",
                "parameters": [
                    {"type": "string", "description": "Texto a buscar", "name": "query", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/owners.Response"}}}
                }
            }
        },
        "/owners/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["owners"],
                "summary": "Obtener dueño por id",
                "parameters": [{"type": "integer", "description": "ID del dueño", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/owners.Response"}},
                    "400": {"description": "invalid id", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "404": {"description": "owner not found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["owners"],
                "summary": "Reemplazar dueño",
                "parameters": [
                    {"type": "integer", "description": "ID del dueño", "name": "id", "in": "path", "required": true},
                    {"description": "Datos del dueño", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/owners.ownerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/owners.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "404": {"description": "owner not found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["owners"],
                "summary": "Borrar dueño",
                "parameters": [{"type": "integer", "description": "ID del dueño", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "invalid id", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/owners/{id}/animals": {
            "get": {
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Animales de un dueño",
                "parameters": [{"type": "integer", "description": "ID del dueño", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/animals.Response"}}}
                }
            }
        },
        "/animals": {
            "get": {
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Listar animales",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/animals.Response"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Crear animal",
                "parameters": [
                    {"description": "Datos del animal", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/animals.animalRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/animals.Response"}},
                    "400": {"description": "invalid json", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "422": {"description": "dangling reference (policy strict)", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/animals/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Buscar animales",
                "description": "species y ownerId se combinan con AND; sin ninguno devuelve todos.",
                "parameters": [
                    {"type": "string", "description": "Especie (exacta)", "name": "species", "in": "query"},
                    {"type": "integer", "description": "ID del dueño", "name": "ownerId", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/animals.Response"}}},
                    "400": {"description": "invalid id", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/animals/species/{species}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Animales por especie",
                "parameters": [{"type": "string", "description": "Especie", "name": "species", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/animals.Response"}}}
                }
            }
        },
        "/animals/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Obtener animal por id",
                "parameters": [{"type": "integer", "description": "ID del animal", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/animals.Response"}},
                    "400": {"description": "invalid id", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "404": {"description": "animal not found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Reemplazar animal",
                "description": "Sin owner (o null) limpia el dueño; {\"id\": null} lo conserva; {\"id\": N} lo cambia.",
                "parameters": [
                    {"type": "integer", "description": "ID del animal", "name": "id", "in": "path", "required": true},
                    {"description": "Datos del animal", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/animals.animalRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/animals.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "404": {"description": "animal not found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "422": {"description": "dangling reference (policy strict)", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["animals"],
                "summary": "Borrar animal",
                "parameters": [{"type": "integer", "description": "ID del animal", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "invalid id", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/animals/{id}/appointments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "Citas de un animal",
                "parameters": [{"type": "integer", "description": "ID del animal", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/appointments.Response"}}}
                }
            }
        },
        "/appointments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "Listar citas",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/appointments.Response"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "Crear cita",
                "parameters": [
                    {"description": "Datos de la cita", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/appointments.appointmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/appointments.Response"}},
                    "400": {"description": "invalid json", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "422": {"description": "dangling reference (policy strict)", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/appointments/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "Buscar citas",
                "parameters": [
                    {"type": "string", "description": "Nombre del veterinario", "name": "veterinarian", "in": "query"},
                    {"type": "string", "description": "Estado", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/appointments.Response"}}}
                }
            }
        },
        "/appointments/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "Obtener cita por id",
                "parameters": [{"type": "integer", "description": "ID de la cita", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/appointments.Response"}},
                    "400": {"description": "invalid id", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "404": {"description": "appointment not found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "Reemplazar cita",
                "parameters": [
                    {"type": "integer", "description": "ID de la cita", "name": "id", "in": "path", "required": true},
                    {"description": "Datos de la cita", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/appointments.appointmentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/appointments.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "404": {"description": "appointment not found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "422": {"description": "dangling reference (policy strict)", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["appointments"],
                "summary": "Borrar cita",
                "parameters": [{"type": "integer", "description": "ID de la cita", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "invalid id", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "httpx.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "owners.ownerRequest": {
            "type": "object",
            "properties": {
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"}
            }
        },
        "owners.Response": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"}
            }
        },
        "animals.ownerRef": {
            "type": "object",
            "properties": {"id": {"type": "integer"}}
        },
        "animals.animalRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "species": {"type": "string"},
                "age": {"type": "integer"},
                "gender": {"type": "string"},
                "owner": {"$ref": "#/definitions/animals.ownerRef"}
            }
        },
        "animals.Response": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "species": {"type": "string"},
                "age": {"type": "integer"},
                "gender": {"type": "string"},
                "owner": {"$ref": "#/definitions/owners.Response"}
            }
        },
        "appointments.animalRef": {
            "type": "object",
            "properties": {"id": {"type": "integer"}}
        },
        "appointments.appointmentRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "description": {"type": "string"},
                "veterinarianName": {"type": "string"},
                "status": {"type": "string"},
                "animal": {"$ref": "#/definitions/appointments.animalRef"}
            }
        },
        "appointments.Response": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "veterinarianName": {"type": "string"},
                "status": {"type": "string"},
                "animal": {"$ref": "#/definitions/animals.Response"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Vet Clinic API",
	Description:      "Dueños, animales y citas de una clínica veterinaria.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
