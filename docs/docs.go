// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/payloads/classify": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["payloads"],
                "summary": "Classify a QR payload",
                "parameters": [
                    {
                        "description": "Decoded QR text",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.PayloadRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Payload kind",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/handler.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/handler.ClassifyResponse"}}}
                            ]
                        }
                    },
                    "400": {
                        "description": "Malformed request body",
                        "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}
                    }
                }
            }
        },
        "/payloads/inspect": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["payloads"],
                "summary": "Inspect the TLV fields of an EMV payload",
                "parameters": [
                    {
                        "description": "Decoded QR text",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.PayloadRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Top-level and merchant account fields",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/handler.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/domain.Inspection"}}}
                            ]
                        }
                    },
                    "400": {
                        "description": "Malformed request body",
                        "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}
                    },
                    "422": {
                        "description": "Invalid QR",
                        "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}
                    }
                }
            }
        },
        "/scans": {
            "post": {
                "description": "Extract the payee address from decoded QR text, copy it and trigger the USSD dial",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["scans"],
                "summary": "Scan a QR payload",
                "parameters": [
                    {
                        "description": "Decoded QR text",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.PayloadRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Payee address found",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/handler.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/domain.ScanResult"}}}
                            ]
                        }
                    },
                    "400": {
                        "description": "Malformed request body",
                        "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}
                    },
                    "422": {
                        "description": "Invalid QR",
                        "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}
                    }
                }
            }
        },
        "/scans/batch": {
            "post": {
                "description": "Extract every payload concurrently. JSON returns the items; csv and xlsx return a download.",
                "consumes": ["application/json"],
                "produces": [
                    "application/json",
                    "text/csv",
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "tags": ["scans"],
                "summary": "Extract payee addresses in bulk",
                "parameters": [
                    {
                        "description": "Payloads to extract",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.BatchRequest"}
                    },
                    {
                        "type": "string",
                        "default": "json",
                        "description": "Report format: json, csv or xlsx",
                        "name": "format",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "default": "scans",
                        "description": "Base name of the downloaded report",
                        "name": "name",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Batch results",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/handler.Response"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"type": "array", "items": {"$ref": "#/definitions/domain.BatchItem"}},
                                        "meta": {"$ref": "#/definitions/handler.BatchMeta"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Malformed request or unsupported format",
                        "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}
                    },
                    "413": {
                        "description": "Too many payloads",
                        "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}
                    }
                }
            }
        },
        "/scans/image": {
            "post": {
                "description": "Decode a QR code from an uploaded image (JPG, PNG or GIF) and scan its text",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["scans"],
                "summary": "Scan a QR image",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Image containing a QR code",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Payee address found",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/handler.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/domain.ScanResult"}}}
                            ]
                        }
                    },
                    "400": {
                        "description": "Missing file or unsupported type",
                        "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}
                    },
                    "413": {
                        "description": "File too large",
                        "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}
                    },
                    "422": {
                        "description": "No QR code or invalid QR",
                        "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.BatchItem": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "index": {"type": "integer"},
                "kind": {"$ref": "#/definitions/domain.PayloadKind"},
                "payee_address": {"type": "string"},
                "payload": {"type": "string"}
            }
        },
        "domain.Inspection": {
            "type": "object",
            "properties": {
                "fields": {"type": "array", "items": {"$ref": "#/definitions/domain.TLVField"}},
                "kind": {"$ref": "#/definitions/domain.PayloadKind"},
                "merchant_account": {"type": "array", "items": {"$ref": "#/definitions/domain.TLVField"}}
            }
        },
        "domain.PayloadKind": {
            "type": "string",
            "enum": ["emv", "url", "unknown"],
            "x-enum-varnames": ["PayloadKindEMV", "PayloadKindURL", "PayloadKindUnknown"]
        },
        "domain.ScanResult": {
            "type": "object",
            "properties": {
                "copied": {"type": "boolean"},
                "dial_error": {"type": "string"},
                "dial_uri": {"type": "string"},
                "dialed": {"type": "boolean"},
                "id": {"type": "string"},
                "kind": {"$ref": "#/definitions/domain.PayloadKind"},
                "payee_address": {"type": "string"},
                "scanned_at": {"type": "string"}
            }
        },
        "domain.TLVField": {
            "type": "object",
            "properties": {
                "length": {"type": "integer"},
                "tag": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "handler.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handler.BatchMeta": {
            "type": "object",
            "properties": {
                "found": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "handler.BatchRequest": {
            "type": "object",
            "required": ["payloads"],
            "properties": {
                "payloads": {
                    "type": "array",
                    "items": {"type": "string"},
                    "example": ["upi://pay?pa=a%40bank", "00020101021226300010A00000052401121234@ybl6304ABCD"]
                }
            }
        },
        "handler.ClassifyResponse": {
            "type": "object",
            "properties": {
                "kind": {
                    "allOf": [{"$ref": "#/definitions/domain.PayloadKind"}],
                    "example": "emv"
                }
            }
        },
        "handler.ErrorResponseBody": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handler.APIError"},
                "success": {"type": "boolean", "example": false}
            }
        },
        "handler.PayloadRequest": {
            "type": "object",
            "properties": {
                "payload": {"type": "string", "example": "upi://pay?pa=merchant%40icici&pn=Corner%20Store"}
            }
        },
        "handler.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "meta": {"$ref": "#/definitions/handler.BatchMeta"},
                "success": {"type": "boolean", "example": true}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "UPI Scan API",
	Description:      "Extracts UPI payee addresses from scanned QR payloads.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
