// Package docs Epi Dashboard API.
//
// Синтетические эпидемиологические данные для фронтендов Explorer и Gallery:
// KPI, временные ряды, частоты линий, трек генома и точки на карте.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/healthz": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["Health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "ok", "schema": {"type": "string"}}
                }
            }
        },
        "/api/overview": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Overview KPIs",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Overview"}}
                }
            }
        },
        "/api/timeseries": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Daily time series",
                "parameters": [
                    {"enum": ["cases", "positivity", "tests"], "type": "string", "default": "cases", "name": "metric", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Smoothing window (pass-through)", "name": "smooth", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TimeSeriesResponse"}}
                }
            }
        },
        "/api/lineages/frequencies": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Lineages"],
                "summary": "Weekly lineage shares",
                "parameters": [
                    {"type": "string", "default": "pct", "description": "Normalisation (pass-through)", "name": "norm", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.LineageFrequencies"}}
                }
            }
        },
        "/api/genome/genes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Genome"],
                "summary": "Genome annotation",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.GenesResponse"}}
                }
            }
        },
        "/api/genome/mutations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Genome"],
                "summary": "Mutations within a gene window",
                "parameters": [
                    {"type": "string", "default": "Spike", "name": "gene", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MutationsResponse"}}
                }
            }
        },
        "/api/geography/points": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Geography"],
                "summary": "City case counts (GeoJSON)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FeatureCollection"}}
                }
            }
        }
    },
    "definitions": {
        "domain.KPI": {
            "type": "object",
            "properties": {"label": {"type": "string"}, "value": {"type": "number"}}
        },
        "domain.TrendPoint": {
            "type": "object",
            "properties": {"date": {"type": "string"}, "cases": {"type": "integer"}, "positivity": {"type": "number"}}
        },
        "domain.LineageShare": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "pct": {"type": "number"}}
        },
        "domain.RegionValue": {
            "type": "object",
            "properties": {"region": {"type": "string"}, "value": {"type": "integer"}}
        },
        "domain.Overview": {
            "type": "object",
            "properties": {
                "kpis": {"type": "array", "items": {"$ref": "#/definitions/domain.KPI"}},
                "trend": {"type": "array", "items": {"$ref": "#/definitions/domain.TrendPoint"}},
                "top_lineages": {"type": "array", "items": {"$ref": "#/definitions/domain.LineageShare"}},
                "top_regions": {"type": "array", "items": {"$ref": "#/definitions/domain.RegionValue"}}
            }
        },
        "domain.SeriesPoint": {
            "type": "object",
            "properties": {"date": {"type": "string"}, "value": {"type": "number"}}
        },
        "dto.TimeSeriesResponse": {
            "type": "object",
            "properties": {"series": {"type": "array", "items": {"$ref": "#/definitions/domain.SeriesPoint"}}}
        },
        "domain.LineageFrequencies": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {"date": {"type": "string"}},
                        "additionalProperties": {"type": "number"}
                    }
                },
                "lineages": {"type": "array", "items": {"type": "string"}}
            }
        },
        "domain.Gene": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "start": {"type": "integer"}, "end": {"type": "integer"}}
        },
        "dto.GenesResponse": {
            "type": "object",
            "properties": {"genes": {"type": "array", "items": {"$ref": "#/definitions/domain.Gene"}}}
        },
        "domain.Mutation": {
            "type": "object",
            "properties": {
                "pos": {"type": "integer"},
                "gene": {"type": "string"},
                "aa_change": {"type": "string"},
                "pct": {"type": "number"}
            }
        },
        "dto.MutationsResponse": {
            "type": "object",
            "properties": {"mutations": {"type": "array", "items": {"$ref": "#/definitions/domain.Mutation"}}}
        },
        "dto.FeatureCollection": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "features": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "type": {"type": "string"},
                            "properties": {
                                "type": "object",
                                "properties": {"name": {"type": "string"}, "value": {"type": "integer"}}
                            },
                            "geometry": {
                                "type": "object",
                                "properties": {
                                    "type": {"type": "string"},
                                    "coordinates": {"type": "array", "items": {"type": "number"}}
                                }
                            }
                        }
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Epi Dashboard API",
	Description:      "Synthetic epidemiological data for the Explorer and Gallery dashboards.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
