// Package docs registers the OpenAPI description served under /swagger.
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
				"summary": "Data directory health",
				"tags": [
					"health"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"503": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/healthz": {
			"get": {
				"summary": "Liveness probe",
				"tags": [
					"health"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/patients": {
			"get": {
				"summary": "List patients",
				"tags": [
					"patients"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "query",
						"name": "name",
						"type": "string",
						"description": "name substring, ignoring case"
					},
					{
						"in": "query",
						"name": "regex",
						"type": "boolean",
						"description": "treat name as a regular expression"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			},
			"post": {
				"summary": "Add a record",
				"tags": [
					"patients"
				],
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/Patient"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/Patient"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/patients/{id}": {
			"get": {
				"summary": "Get a record",
				"tags": [
					"patients"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "integer",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Patient"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			},
			"put": {
				"summary": "Replace a record",
				"tags": [
					"patients"
				],
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "integer",
						"required": true
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/Patient"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			},
			"delete": {
				"summary": "Delete a record",
				"tags": [
					"patients"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "integer",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/doctors": {
			"get": {
				"summary": "List doctors",
				"tags": [
					"doctors"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			},
			"post": {
				"summary": "Add a record",
				"tags": [
					"doctors"
				],
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/Doctor"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/Doctor"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/doctors/{id}": {
			"get": {
				"summary": "Get a record",
				"tags": [
					"doctors"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "integer",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Doctor"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			},
			"put": {
				"summary": "Replace a record",
				"tags": [
					"doctors"
				],
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "integer",
						"required": true
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/Doctor"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			},
			"delete": {
				"summary": "Delete a record",
				"tags": [
					"doctors"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "integer",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/appointments": {
			"get": {
				"summary": "List appointments",
				"tags": [
					"appointments"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "query",
						"name": "date",
						"type": "string",
						"description": "timestamp prefix, e.g. 2024-06"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			},
			"post": {
				"summary": "Add a record",
				"tags": [
					"appointments"
				],
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/Appointment"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/Appointment"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/appointments/{id}": {
			"get": {
				"summary": "Get a record",
				"tags": [
					"appointments"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "integer",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Appointment"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			},
			"put": {
				"summary": "Replace a record",
				"tags": [
					"appointments"
				],
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "integer",
						"required": true
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/Appointment"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			},
			"delete": {
				"summary": "Delete a record",
				"tags": [
					"appointments"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "integer",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/equipment": {
			"get": {
				"summary": "List equipment",
				"tags": [
					"equipment"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			},
			"post": {
				"summary": "Add a record",
				"tags": [
					"equipment"
				],
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/Equipment"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/Equipment"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/equipment/{id}": {
			"get": {
				"summary": "Get a record",
				"tags": [
					"equipment"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "integer",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/Equipment"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			},
			"put": {
				"summary": "Replace a record",
				"tags": [
					"equipment"
				],
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "integer",
						"required": true
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/Equipment"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			},
			"delete": {
				"summary": "Delete a record",
				"tags": [
					"equipment"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "integer",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/inventory": {
			"get": {
				"summary": "List inventory",
				"tags": [
					"inventory"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			},
			"post": {
				"summary": "Add a record",
				"tags": [
					"inventory"
				],
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/InventoryItem"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/InventoryItem"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/inventory/{id}": {
			"get": {
				"summary": "Get a record",
				"tags": [
					"inventory"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "integer",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/InventoryItem"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			},
			"put": {
				"summary": "Replace a record",
				"tags": [
					"inventory"
				],
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "integer",
						"required": true
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/InventoryItem"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			},
			"delete": {
				"summary": "Delete a record",
				"tags": [
					"inventory"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "integer",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/equipment/{id}/adjust": {
			"post": {
				"summary": "Adjust available units",
				"tags": [
					"equipment"
				],
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "integer",
						"required": true
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/Adjust"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/inventory/{id}/adjust": {
			"post": {
				"summary": "Adjust available units",
				"tags": [
					"inventory"
				],
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "integer",
						"required": true
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/Adjust"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/reports/patients": {
			"get": {
				"summary": "Patients by age and address",
				"tags": [
					"reports"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "query",
						"name": "min_age",
						"type": "integer"
					},
					{
						"in": "query",
						"name": "address",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/reports/doctors": {
			"get": {
				"summary": "Doctors by specialty",
				"tags": [
					"reports"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/reports/appointments": {
			"get": {
				"summary": "Appointments in a date range",
				"tags": [
					"reports"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "query",
						"name": "from",
						"type": "string",
						"description": "YYYY-MM-DD"
					},
					{
						"in": "query",
						"name": "to",
						"type": "string",
						"description": "YYYY-MM-DD"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/reports/appointments/by-doctor": {
			"get": {
				"summary": "Appointments per doctor",
				"tags": [
					"reports"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/reports/inventory": {
			"get": {
				"summary": "Inventory totals",
				"tags": [
					"reports"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "query",
						"name": "low_stock",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/reports/equipment": {
			"get": {
				"summary": "Equipment availability",
				"tags": [
					"reports"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/backups": {
			"get": {
				"summary": "List snapshots",
				"tags": [
					"backups"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"503": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			},
			"post": {
				"summary": "Snapshot the data files",
				"tags": [
					"backups"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"503": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		},
		"/backups/{id}/{entity}": {
			"get": {
				"summary": "Presigned download URL",
				"tags": [
					"backups"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "string",
						"required": true
					},
					{
						"in": "path",
						"name": "entity",
						"type": "string",
						"required": true,
						"enum": [
							"patient",
							"doctor",
							"appointment",
							"equipment",
							"inventory"
						]
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					},
					"503": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/Error"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"Patient": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"age": {
					"type": "integer"
				},
				"phone": {
					"type": "string"
				}
			}
		},
		"Doctor": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"specialty": {
					"type": "string"
				}
			}
		},
		"Appointment": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"patient_id": {
					"type": "integer"
				},
				"doctor_id": {
					"type": "integer"
				},
				"timestamp": {
					"type": "string",
					"example": "2024-06-15T09:30"
				},
				"reason": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				}
			}
		},
		"Equipment": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"available_count": {
					"type": "integer"
				}
			}
		},
		"InventoryItem": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"quantity": {
					"type": "integer"
				},
				"unit": {
					"type": "string"
				}
			}
		},
		"Adjust": {
			"type": "object",
			"properties": {
				"delta": {
					"type": "integer"
				}
			}
		},
		"Error": {
			"type": "object",
			"properties": {
				"request_id": {
					"type": "string"
				},
				"error": {
					"type": "object",
					"properties": {
						"code": {
							"type": "string"
						},
						"message": {
							"type": "string"
						}
					}
				}
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
	Title:            "Clinic Records API",
	Description:      "Patients, doctors, appointments, equipment and inventory kept in flat files.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
