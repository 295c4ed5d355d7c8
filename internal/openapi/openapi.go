package openapi

func jsonResponse(description string, schema map[string]any) map[string]any {
	return map[string]any{
		"description": description,
		"content": map[string]any{
			"application/json": map[string]any{"schema": schema},
		},
	}
}

func errorSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"error": map[string]any{"type": "string"},
		},
		"required": []string{"error"},
	}
}

// Spec returns a minimal OpenAPI 3 spec for the visitLogger HTTP API.
// It is intentionally hand-maintained to avoid codegen tooling.
func Spec() map[string]any {
	return map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   "visitLogger API",
			"version": "0.1.0",
		},
		"paths": map[string]any{
			"/healthz": map[string]any{
				"get": map[string]any{
					"tags":        []string{"system"},
					"summary":     "Health check",
					"operationId": "healthz",
					"responses":   map[string]any{"200": map[string]any{"description": "OK"}},
				},
			},
			"/api/status": map[string]any{
				"get": map[string]any{
					"tags":        []string{"system"},
					"summary":     "Get service status and counters",
					"operationId": "getStatus",
					"responses": map[string]any{
						"200": jsonResponse("Status", map[string]any{"type": "object"}),
					},
				},
			},
			"/script": map[string]any{
				"post": map[string]any{
					"tags":        []string{"scripts"},
					"summary":     "Register a site and issue a tracking script",
					"operationId": "issueScript",
					"requestBody": map[string]any{
						"required": true,
						"content": map[string]any{
							"application/json": map[string]any{
								"schema": map[string]any{"$ref": "#/components/schemas/IssueScriptRequest"},
							},
						},
					},
					"responses": map[string]any{
						"200": jsonResponse("Issued script", map[string]any{"$ref": "#/components/schemas/IssueScriptResponse"}),
						"400": jsonResponse("Missing fields", errorSchema()),
						"500": jsonResponse("Store failure", errorSchema()),
					},
				},
			},
			"/track.js": map[string]any{
				"get": map[string]any{
					"tags":        []string{"tracking"},
					"summary":     "Serve the embeddable tracking snippet",
					"operationId": "getSnippet",
					"parameters": []map[string]any{
						{"name": "scriptId", "in": "query", "required": true, "schema": map[string]any{"type": "string"}},
						{"name": "userId", "in": "query", "required": true, "schema": map[string]any{"type": "string"}},
					},
					"responses": map[string]any{
						"200": map[string]any{"description": "JavaScript snippet"},
						"400": map[string]any{"description": "Missing scriptId or userId"},
					},
				},
			},
			"/track": map[string]any{
				"post": map[string]any{
					"tags":        []string{"tracking"},
					"summary":     "Ingest one visit beacon",
					"operationId": "trackVisit",
					"requestBody": map[string]any{
						"required": true,
						"content": map[string]any{
							"application/json": map[string]any{
								"schema": map[string]any{"$ref": "#/components/schemas/TrackRequest"},
							},
						},
					},
					"responses": map[string]any{
						"200": jsonResponse("Stored", map[string]any{
							"type": "object",
							"properties": map[string]any{
								"message": map[string]any{"type": "string"},
							},
						}),
						"400": jsonResponse("Missing required fields", errorSchema()),
						"429": jsonResponse("Rate limited", errorSchema()),
						"500": jsonResponse("Store failure", errorSchema()),
					},
				},
			},
			"/analytics/{scriptId}": map[string]any{
				"get": map[string]any{
					"tags":        []string{"analytics"},
					"summary":     "List visits for a script, newest first",
					"operationId": "listVisits",
					"parameters": []map[string]any{
						{"name": "scriptId", "in": "path", "required": true, "schema": map[string]any{"type": "string"}},
						{"name": "page", "in": "query", "schema": map[string]any{"type": "integer", "default": 1}},
						{"name": "limit", "in": "query", "schema": map[string]any{"type": "integer", "default": 10, "maximum": 100}},
					},
					"responses": map[string]any{
						"200": jsonResponse("Visit page", map[string]any{
							"type": "object",
							"properties": map[string]any{
								"documents": map[string]any{
									"type":  "array",
									"items": map[string]any{"$ref": "#/components/schemas/VisitEvent"},
								},
								"total": map[string]any{"type": "integer"},
								"page":  map[string]any{"type": "integer"},
								"limit": map[string]any{"type": "integer"},
							},
						}),
						"500": jsonResponse("Query failure", errorSchema()),
					},
				},
			},
			"/analytics/graph/{scriptId}": map[string]any{
				"get": map[string]any{
					"tags":        []string{"analytics"},
					"summary":     "Daily visit counts with zero-filled days",
					"operationId": "visitGraph",
					"parameters": []map[string]any{
						{"name": "scriptId", "in": "path", "required": true, "schema": map[string]any{"type": "string"}},
						{"name": "days", "in": "query", "schema": map[string]any{"type": "integer", "default": 5, "maximum": 90}},
					},
					"responses": map[string]any{
						"200": jsonResponse("Daily series", map[string]any{
							"type": "object",
							"properties": map[string]any{
								"graphData": map[string]any{
									"type":  "array",
									"items": map[string]any{"$ref": "#/components/schemas/DatePoint"},
								},
							},
						}),
						"500": jsonResponse("Query failure", errorSchema()),
					},
				},
			},
		},
		"components": map[string]any{
			"schemas": map[string]any{
				"IssueScriptRequest": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"userId":     map[string]any{"type": "string"},
						"scriptName": map[string]any{"type": "string"},
					},
					"required": []string{"userId", "scriptName"},
				},
				"IssueScriptResponse": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"scriptUrl":  map[string]any{"type": "string"},
						"scriptId":   map[string]any{"type": "string"},
						"scriptName": map[string]any{"type": "string"},
						"userId":     map[string]any{"type": "string"},
					},
				},
				"TrackRequest": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"scriptId":  map[string]any{"type": "string"},
						"userId":    map[string]any{"type": "string"},
						"ipAddress": map[string]any{"type": "string"},
						"timestamp": map[string]any{"type": "string"},
						"userAgent": map[string]any{"type": "string"},
						"timeSpent": map[string]any{"description": "seconds on page, string or number accepted"},
						"city":      map[string]any{"type": "string"},
						"latitude":  map[string]any{},
						"longitude": map[string]any{},
						"pageViews": map[string]any{},
					},
					"required": []string{"scriptId", "userId", "ipAddress", "timestamp", "userAgent", "timeSpent"},
				},
				"VisitEvent": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":        map[string]any{"type": "string", "format": "uuid"},
						"scriptId":  map[string]any{"type": "string"},
						"userId":    map[string]any{"type": "string"},
						"ipAddress": map[string]any{"type": "string"},
						"timestamp": map[string]any{"type": "string"},
						"userAgent": map[string]any{"type": "string"},
						"timeSpent": map[string]any{"type": "string"},
						"city":      map[string]any{"type": "string"},
						"latitude":  map[string]any{"type": "string"},
						"longitude": map[string]any{"type": "string"},
						"pageViews": map[string]any{"type": "string"},
						"createdAt": map[string]any{"type": "string", "format": "date-time"},
					},
				},
				"DatePoint": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"date":  map[string]any{"type": "string", "format": "date"},
						"count": map[string]any{"type": "integer"},
					},
				},
			},
		},
	}
}
