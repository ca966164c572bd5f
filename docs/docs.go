// Package docs registers the OpenAPI document served under /docs.
// Keep it in step with the godoc annotations on the handlers.
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
        "/api/dashboard": {
            "get": {
                "description": "Overview, recent activity and breakdowns composed from one snapshot",
                "produces": ["application/json"],
                "tags": ["Metrics"],
                "summary": "Dashboard view",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/fiber.DashboardResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/internal_metrics_adapters_http_fiber.ErrorResponse"}}
                }
            }
        },
        "/api/events": {
            "get": {
                "description": "Returns events newest first, optionally filtered by type and user",
                "produces": ["application/json"],
                "tags": ["Events"],
                "summary": "List analytics events",
                "parameters": [
                    {"type": "integer", "default": 100, "description": "Maximum number of events", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Event type", "name": "event_type", "in": "query"},
                    {"type": "string", "description": "User id", "name": "user_id", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/fiber.EventListEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/internal_events_adapters_http_fiber.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/internal_events_adapters_http_fiber.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Stores one event, defaulting its timestamp, and recomputes the metrics",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Events"],
                "summary": "Track an analytics event",
                "parameters": [
                    {"description": "Event payload", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/fiber.CreateEventRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/fiber.CreateEventResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/internal_events_adapters_http_fiber.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/internal_events_adapters_http_fiber.ErrorResponse"}}
                }
            }
        },
        "/api/events/bulk": {
            "post": {
                "description": "Validates every event, stores the batch atomically and recomputes once",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Events"],
                "summary": "Track a batch of analytics events",
                "parameters": [
                    {"description": "Bulk event payload", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/fiber.BulkCreateEventsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/fiber.EventListEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/internal_events_adapters_http_fiber.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/internal_events_adapters_http_fiber.ErrorResponse"}}
                }
            }
        },
        "/api/metrics": {
            "get": {
                "description": "Recomputes every metric from the stored events",
                "produces": ["application/json"],
                "tags": ["Metrics"],
                "summary": "Full metrics snapshot",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/fiber.SnapshotResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/internal_metrics_adapters_http_fiber.ErrorResponse"}}
                }
            }
        },
        "/api/metrics/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Metrics"],
                "summary": "One named metric",
                "parameters": [
                    {
                        "enum": ["total_events", "unique_users", "unique_sessions", "events_by_type", "devices", "popular_pages", "revenue", "last_7_days"],
                        "type": "string", "description": "Metric name", "name": "name", "in": "path", "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/fiber.MetricResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/internal_metrics_adapters_http_fiber.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/internal_metrics_adapters_http_fiber.ErrorResponse"}}
                }
            }
        },
        "/api/reports/generate": {
            "post": {
                "description": "Filters events by date range, event_type and user_id, then groups them by metric_name (user_activity, daily_events)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Reports"],
                "summary": "Generate a custom report",
                "parameters": [
                    {"description": "Report query", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/fiber.GenerateReportRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/fiber.GenerateReportResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/internal_reports_adapters_http_fiber.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/internal_reports_adapters_http_fiber.ErrorResponse"}}
                }
            }
        },
        "/api/test": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Status"],
                "summary": "Smoke test",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/server.testResponse"}}}
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Status"],
                "summary": "Liveness check",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/server.healthResponse"}}}
            }
        }
    },
    "definitions": {
        "domain.Dashboard": {
            "type": "object",
            "properties": {
                "device_breakdown": {"type": "object", "additionalProperties": {"type": "integer"}},
                "overview": {"$ref": "#/definitions/domain.Overview"},
                "popular_pages": {"type": "object", "additionalProperties": {"type": "integer"}},
                "recent_activity": {"$ref": "#/definitions/domain.Window"},
                "revenue_stats": {"$ref": "#/definitions/domain.Revenue"},
                "top_events": {"type": "object", "additionalProperties": {"type": "integer"}},
                "updated_at": {"type": "string"}
            }
        },
        "domain.Overview": {
            "type": "object",
            "properties": {
                "total_events": {"type": "integer"},
                "total_revenue": {"type": "number"},
                "unique_sessions": {"type": "integer"},
                "unique_users": {"type": "integer"}
            }
        },
        "domain.Revenue": {
            "type": "object",
            "properties": {
                "average_order_value": {"type": "number"},
                "total": {"type": "number"},
                "transactions": {"type": "integer"}
            }
        },
        "domain.Snapshot": {
            "type": "object",
            "properties": {
                "devices": {"type": "object", "additionalProperties": {"type": "integer"}},
                "events_by_type": {"type": "object", "additionalProperties": {"type": "integer"}},
                "last_7_days": {"$ref": "#/definitions/domain.Window"},
                "popular_pages": {"type": "object", "additionalProperties": {"type": "integer"}},
                "revenue": {"$ref": "#/definitions/domain.Revenue"},
                "total_events": {"type": "integer"},
                "unique_sessions": {"type": "integer"},
                "unique_users": {"type": "integer"}
            }
        },
        "domain.Window": {
            "type": "object",
            "properties": {
                "conversions": {"type": "integer"},
                "events": {"type": "integer"},
                "page_views": {"type": "integer"},
                "unique_users": {"type": "integer"}
            }
        },
        "fiber.BulkCreateEventsRequest": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"$ref": "#/definitions/fiber.CreateEventRequest"}}
            }
        },
        "fiber.CreateEventRequest": {
            "description": "Analytics event DTO",
            "type": "object",
            "properties": {
                "event_type": {"type": "string", "example": "page_view"},
                "properties": {"type": "object", "additionalProperties": true},
                "session_id": {"type": "string", "example": "session_1"},
                "timestamp": {"type": "string", "example": "2024-05-01T10:00:00Z"},
                "user_id": {"type": "string", "example": "user_1"}
            }
        },
        "fiber.CreateEventResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/fiber.EventResponse"},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "fiber.DashboardResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.Dashboard"},
                "success": {"type": "boolean"}
            }
        },
        "fiber.EventListEnvelope": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/fiber.EventListResponse"},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "fiber.EventListResponse": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"$ref": "#/definitions/fiber.EventResponse"}},
                "total": {"type": "integer"}
            }
        },
        "fiber.EventResponse": {
            "type": "object",
            "properties": {
                "event_type": {"type": "string"},
                "id": {"type": "string"},
                "properties": {"type": "object", "additionalProperties": true},
                "session_id": {"type": "string"},
                "timestamp": {"type": "string"},
                "user_id": {"type": "string"}
            }
        },
        "fiber.GenerateReportRequest": {
            "description": "Report query DTO",
            "type": "object",
            "properties": {
                "end_date": {"type": "string", "example": "2024-05-31T23:59:59Z"},
                "filters": {"type": "object", "additionalProperties": true},
                "metric_name": {"type": "string", "example": "user_activity"},
                "start_date": {"type": "string", "example": "2024-05-01T00:00:00Z"}
            }
        },
        "fiber.GenerateReportResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/fiber.ReportResponse"},
                "success": {"type": "boolean"}
            }
        },
        "fiber.MetricResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/fiber.MetricValue"},
                "success": {"type": "boolean"}
            }
        },
        "fiber.MetricValue": {
            "type": "object",
            "properties": {
                "metric": {"type": "string", "example": "total_events"},
                "value": {}
            }
        },
        "fiber.PeriodResponse": {
            "type": "object",
            "properties": {
                "end": {"type": "string"},
                "start": {"type": "string"}
            }
        },
        "fiber.ReportResponse": {
            "type": "object",
            "properties": {
                "filters": {"type": "object", "additionalProperties": true},
                "metric": {"type": "string"},
                "period": {"$ref": "#/definitions/fiber.PeriodResponse"},
                "results": {"type": "object", "additionalProperties": true},
                "total_events": {"type": "integer"}
            }
        },
        "fiber.SnapshotResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.Snapshot"},
                "success": {"type": "boolean"}
            }
        },
        "internal_events_adapters_http_fiber.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "invalid_event"},
                "message": {"type": "string", "example": "Event payload is invalid"},
                "success": {"type": "boolean", "example": false}
            }
        },
        "internal_metrics_adapters_http_fiber.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "metric_not_found"},
                "message": {"type": "string", "example": "Metric not found"},
                "success": {"type": "boolean", "example": false}
            }
        },
        "internal_reports_adapters_http_fiber.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "invalid_query"},
                "message": {"type": "string", "example": "metric_name is required"},
                "success": {"type": "boolean", "example": false}
            }
        },
        "server.healthResponse": {
            "type": "object",
            "properties": {
                "events": {"type": "integer"},
                "service": {"type": "string"},
                "status": {"type": "string"},
                "timestamp": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "server.testData": {
            "type": "object",
            "properties": {
                "events": {"type": "integer"},
                "message": {"type": "string"},
                "metrics": {"type": "integer"},
                "timestamp": {"type": "string"}
            }
        },
        "server.testResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/server.testData"},
                "success": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Analytics Service API",
	Description:      "Ingests analytics events in memory and serves metrics, a dashboard and ad-hoc reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
