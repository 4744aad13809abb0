// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/ledger_backend/main.go -o cmd/docs
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
		"/organizations": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"organizations"
				],
				"summary": "Create an organization",
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateOrganizationRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.OrganizationResponse"
						}
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			},
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"organizations"
				],
				"summary": "List organizations",
				"parameters": [],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListOrganizationsResponse"
						}
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			}
		},
		"/organizations/{organization_id}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"organizations"
				],
				"summary": "Get an organization",
				"parameters": [
					{
						"type": "string",
						"description": "Organization ID",
						"name": "organization_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.OrganizationResponse"
						}
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			}
		},
		"/account-types": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"accounts"
				],
				"summary": "List account types",
				"parameters": [],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			}
		},
		"/organizations/{organization_id}/accounts": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"accounts"
				],
				"summary": "Create a new account",
				"parameters": [
					{
						"type": "string",
						"description": "Organization ID",
						"name": "organization_id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateAccountRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.AccountResponse"
						}
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			},
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"accounts"
				],
				"summary": "List the chart of accounts",
				"parameters": [
					{
						"type": "string",
						"description": "Organization ID",
						"name": "organization_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListAccountsResponse"
						}
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			}
		},
		"/organizations/{organization_id}/accounts/seed": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"accounts"
				],
				"summary": "Seed the default chart of accounts",
				"parameters": [
					{
						"type": "string",
						"description": "Organization ID",
						"name": "organization_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SeedChartResponse"
						}
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			}
		},
		"/organizations/{organization_id}/accounts/by-code/{code}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"accounts"
				],
				"summary": "Get an account by code",
				"parameters": [
					{
						"type": "string",
						"description": "Organization ID",
						"name": "organization_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "code",
						"in": "path",
						"required": true,
						"description": "Account code"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.AccountResponse"
						}
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			}
		},
		"/organizations/{organization_id}/accounts/{account_id}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"accounts"
				],
				"summary": "Get an account by ID",
				"parameters": [
					{
						"type": "string",
						"description": "Organization ID",
						"name": "organization_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "account_id",
						"in": "path",
						"required": true,
						"description": "Account ID"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.AccountResponse"
						}
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			},
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"accounts"
				],
				"summary": "Update an account",
				"parameters": [
					{
						"type": "string",
						"description": "Organization ID",
						"name": "organization_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "account_id",
						"in": "path",
						"required": true,
						"description": "Account ID"
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.UpdateAccountRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.AccountResponse"
						}
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"accounts"
				],
				"summary": "Delete an account",
				"parameters": [
					{
						"type": "string",
						"description": "Organization ID",
						"name": "organization_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "account_id",
						"in": "path",
						"required": true,
						"description": "Account ID"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			}
		},
		"/organizations/{organization_id}/accounts/{account_id}/balance": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"accounts"
				],
				"summary": "Get an account balance",
				"parameters": [
					{
						"type": "string",
						"description": "Organization ID",
						"name": "organization_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "account_id",
						"in": "path",
						"required": true,
						"description": "Account ID"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.AccountBalanceResponse"
						}
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			}
		},
		"/organizations/{organization_id}/fiscal-years": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"periods"
				],
				"summary": "List fiscal years",
				"parameters": [
					{
						"type": "string",
						"description": "Organization ID",
						"name": "organization_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"500": {
						"description": "Internal error"
					}
				}
			}
		},
		"/organizations/{organization_id}/periods": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"periods"
				],
				"summary": "List accounting periods",
				"parameters": [
					{
						"type": "string",
						"description": "Organization ID",
						"name": "organization_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			}
		},
		"/organizations/{organization_id}/periods/resolve": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"periods"
				],
				"summary": "Resolve or create the period covering a date",
				"parameters": [
					{
						"type": "string",
						"description": "Organization ID",
						"name": "organization_id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ResolvePeriodRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			}
		},
		"/organizations/{organization_id}/periods/{period_id}/status": {
			"patch": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"periods"
				],
				"summary": "Open, close or lock a period",
				"parameters": [
					{
						"type": "string",
						"description": "Organization ID",
						"name": "organization_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "period_id",
						"in": "path",
						"required": true,
						"description": "Period ID"
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.UpdatePeriodStatusRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PeriodResponse"
						}
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			}
		},
		"/organizations/{organization_id}/journals/validate": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"journals"
				],
				"summary": "Validate a journal entry without posting it",
				"parameters": [
					{
						"type": "string",
						"description": "Organization ID",
						"name": "organization_id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateJournalEntryRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ValidateJournalEntryResponse"
						}
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			}
		},
		"/organizations/{organization_id}/journals": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"journals"
				],
				"summary": "Post a journal entry",
				"parameters": [
					{
						"type": "string",
						"description": "Organization ID",
						"name": "organization_id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateJournalEntryRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.JournalEntryResponse"
						}
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			},
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"journals"
				],
				"summary": "List journal entries",
				"parameters": [
					{
						"type": "string",
						"description": "Organization ID",
						"name": "organization_id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"name": "limit",
						"in": "query",
						"description": "Page size"
					},
					{
						"type": "string",
						"name": "nextToken",
						"in": "query",
						"description": "Token from the previous page"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListJournalEntriesResponse"
						}
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			}
		},
		"/organizations/{organization_id}/journals/{entry_id}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"journals"
				],
				"summary": "Get a journal entry",
				"parameters": [
					{
						"type": "string",
						"description": "Organization ID",
						"name": "organization_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "entry_id",
						"in": "path",
						"required": true,
						"description": "Entry ID"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.JournalEntryResponse"
						}
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			}
		},
		"/organizations/{organization_id}/journals/{entry_id}/reverse": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"journals"
				],
				"summary": "Reverse a journal entry",
				"parameters": [
					{
						"type": "string",
						"description": "Organization ID",
						"name": "organization_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "entry_id",
						"in": "path",
						"required": true,
						"description": "Entry ID"
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.JournalEntryResponse"
						}
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			}
		},
		"/organizations/{organization_id}/documents/post": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"documents"
				],
				"summary": "Post a verified purchase document",
				"parameters": [
					{
						"type": "string",
						"description": "Organization ID",
						"name": "organization_id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.PostDocumentRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.JournalEntryResponse"
						}
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			}
		},
		"/organizations/{organization_id}/reports/general-ledger/{account_id}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"reports"
				],
				"summary": "General ledger for an account",
				"parameters": [
					{
						"type": "string",
						"description": "Organization ID",
						"name": "organization_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "account_id",
						"in": "path",
						"required": true,
						"description": "Account ID"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.GeneralLedgerResponse"
						}
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			}
		},
		"/organizations/{organization_id}/reports/trial-balance": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"reports"
				],
				"summary": "Generate trial balance report",
				"parameters": [
					{
						"type": "string",
						"description": "Organization ID",
						"name": "organization_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "asOf",
						"in": "query",
						"description": "Report date (YYYY-MM-DD)"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.TrialBalanceResponse"
						}
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			}
		},
		"/organizations/{organization_id}/reports/vat-summary": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"reports"
				],
				"summary": "VAT return summary",
				"parameters": [
					{
						"type": "string",
						"description": "Organization ID",
						"name": "organization_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "startDate",
						"in": "query",
						"description": "Range start (YYYY-MM-DD)"
					},
					{
						"type": "string",
						"name": "endDate",
						"in": "query",
						"description": "Range end (YYYY-MM-DD)"
					},
					{
						"type": "integer",
						"name": "year",
						"in": "query",
						"description": "Calendar year"
					},
					{
						"type": "integer",
						"name": "quarter",
						"in": "query",
						"description": "Quarter 1-4"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.VATSummaryResponse"
						}
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			}
		},
		"/organizations/{organization_id}/classification/suggest": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"classification"
				],
				"summary": "Suggest an account for a transaction",
				"parameters": [
					{
						"type": "string",
						"description": "Organization ID",
						"name": "organization_id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.SuggestAccountRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SuggestAccountResponse"
						}
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			}
		},
		"/organizations/{organization_id}/classification/learn": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"classification"
				],
				"summary": "Learn a classification rule",
				"parameters": [
					{
						"type": "string",
						"description": "Organization ID",
						"name": "organization_id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.LearnRuleRequest"
						}
					}
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ClassificationRuleResponse"
						}
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			}
		},
		"/organizations/{organization_id}/classification/rules": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"classification"
				],
				"summary": "List learned classification rules",
				"parameters": [
					{
						"type": "string",
						"description": "Organization ID",
						"name": "organization_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Invalid input"
					},
					"401": {
						"description": "Unauthorized"
					},
					"404": {
						"description": "Not found"
					},
					"409": {
						"description": "Conflict"
					},
					"500": {
						"description": "Internal error"
					}
				}
			}
		}
	},
	"definitions": {
		"dto.CreateOrganizationRequest": {
			"type": "object",
			"properties": {
				"organizationID": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"baseCurrency": {
					"type": "string"
				},
				"fiscalYearStartMonth": {
					"type": "integer"
				}
			}
		},
		"dto.OrganizationResponse": {
			"type": "object",
			"properties": {
				"organizationID": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"baseCurrency": {
					"type": "string"
				},
				"fiscalYearStartMonth": {
					"type": "integer"
				},
				"createdAt": {
					"type": "string"
				}
			}
		},
		"dto.ListOrganizationsResponse": {
			"type": "object",
			"properties": {
				"organizations": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.OrganizationResponse"
					}
				}
			}
		},
		"dto.CreateAccountRequest": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"accountTypeID": {
					"type": "string"
				},
				"taxCode": {
					"type": "string"
				},
				"isSystem": {
					"type": "boolean"
				}
			}
		},
		"dto.UpdateAccountRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"isActive": {
					"type": "boolean"
				},
				"taxCode": {
					"type": "string"
				}
			}
		},
		"dto.AccountResponse": {
			"type": "object",
			"properties": {
				"accountID": {
					"type": "string"
				},
				"code": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"accountTypeID": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"normalBalance": {
					"type": "string"
				},
				"isActive": {
					"type": "boolean"
				},
				"isSystem": {
					"type": "boolean"
				},
				"taxCode": {
					"type": "string"
				}
			}
		},
		"dto.ListAccountsResponse": {
			"type": "object",
			"properties": {
				"accounts": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.AccountResponse"
					}
				}
			}
		},
		"dto.SeedChartResponse": {
			"type": "object",
			"properties": {
				"created": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.AccountResponse"
					}
				},
				"skipped": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"dto.AccountBalanceResponse": {
			"type": "object",
			"properties": {
				"accountID": {
					"type": "string"
				},
				"balance": {
					"type": "number"
				}
			}
		},
		"dto.ResolvePeriodRequest": {
			"type": "object",
			"properties": {
				"date": {
					"type": "string"
				}
			}
		},
		"dto.UpdatePeriodStatusRequest": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				}
			}
		},
		"dto.PeriodResponse": {
			"type": "object",
			"properties": {
				"periodID": {
					"type": "string"
				},
				"fiscalYearID": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"startDate": {
					"type": "string"
				},
				"endDate": {
					"type": "string"
				},
				"status": {
					"type": "string"
				}
			}
		},
		"dto.JournalLineRequest": {
			"type": "object",
			"properties": {
				"accountID": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"debit": {
					"type": "number"
				},
				"credit": {
					"type": "number"
				},
				"taxCode": {
					"type": "string"
				},
				"taxAmount": {
					"type": "number"
				}
			}
		},
		"dto.CreateJournalEntryRequest": {
			"type": "object",
			"properties": {
				"entryDate": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"reference": {
					"type": "string"
				},
				"sourceType": {
					"type": "string"
				},
				"sourceID": {
					"type": "string"
				},
				"currencyCode": {
					"type": "string"
				},
				"lines": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.JournalLineRequest"
					}
				}
			}
		},
		"dto.ValidateJournalEntryResponse": {
			"type": "object",
			"properties": {
				"valid": {
					"type": "boolean"
				},
				"error": {
					"type": "string"
				},
				"errors": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"dto.JournalLineResponse": {
			"type": "object",
			"properties": {
				"lineID": {
					"type": "string"
				},
				"accountID": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"debit": {
					"type": "number"
				},
				"credit": {
					"type": "number"
				},
				"taxCode": {
					"type": "string"
				},
				"taxAmount": {
					"type": "number"
				},
				"lineOrder": {
					"type": "integer"
				}
			}
		},
		"dto.JournalEntryResponse": {
			"type": "object",
			"properties": {
				"entryID": {
					"type": "string"
				},
				"entryNumber": {
					"type": "string"
				},
				"periodID": {
					"type": "string"
				},
				"entryDate": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"reference": {
					"type": "string"
				},
				"sourceType": {
					"type": "string"
				},
				"sourceID": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"currencyCode": {
					"type": "string"
				},
				"totalDebit": {
					"type": "number"
				},
				"totalCredit": {
					"type": "number"
				},
				"reversalOfID": {
					"type": "string"
				},
				"postedAt": {
					"type": "string"
				},
				"createdBy": {
					"type": "string"
				},
				"lines": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.JournalLineResponse"
					}
				}
			}
		},
		"dto.ListJournalEntriesResponse": {
			"type": "object",
			"properties": {
				"entries": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.JournalEntryResponse"
					}
				},
				"nextToken": {
					"type": "string"
				}
			}
		},
		"dto.PostDocumentRequest": {
			"type": "object",
			"properties": {
				"documentID": {
					"type": "string"
				},
				"date": {
					"type": "string"
				},
				"totalAmount": {
					"type": "number"
				},
				"vatAmount": {
					"type": "number"
				},
				"netAmount": {
					"type": "number"
				},
				"currency": {
					"type": "string"
				},
				"merchantName": {
					"type": "string"
				},
				"glAccountID": {
					"type": "string"
				},
				"reference": {
					"type": "string"
				}
			}
		},
		"dto.LedgerRowResponse": {
			"type": "object",
			"properties": {
				"date": {
					"type": "string"
				},
				"entryID": {
					"type": "string"
				},
				"entryNumber": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"reference": {
					"type": "string"
				},
				"debit": {
					"type": "number"
				},
				"credit": {
					"type": "number"
				},
				"runningBalance": {
					"type": "number"
				}
			}
		},
		"dto.GeneralLedgerResponse": {
			"type": "object",
			"properties": {
				"accountID": {
					"type": "string"
				},
				"accountCode": {
					"type": "string"
				},
				"accountName": {
					"type": "string"
				},
				"normalBalance": {
					"type": "string"
				},
				"rows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.LedgerRowResponse"
					}
				},
				"closingBalance": {
					"type": "number"
				}
			}
		},
		"dto.TrialBalanceRowResponse": {
			"type": "object",
			"properties": {
				"accountID": {
					"type": "string"
				},
				"accountCode": {
					"type": "string"
				},
				"accountName": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"debit": {
					"type": "number"
				},
				"credit": {
					"type": "number"
				}
			}
		},
		"dto.TrialBalanceResponse": {
			"type": "object",
			"properties": {
				"asOf": {
					"type": "string"
				},
				"rows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.TrialBalanceRowResponse"
					}
				},
				"totals": {
					"type": "object",
					"properties": {
						"debit": {
							"type": "number"
						},
						"credit": {
							"type": "number"
						}
					}
				}
			}
		},
		"dto.VATSummaryResponse": {
			"type": "object",
			"properties": {
				"startDate": {
					"type": "string"
				},
				"endDate": {
					"type": "string"
				},
				"outputVat": {
					"type": "number"
				},
				"inputVat": {
					"type": "number"
				},
				"netVat": {
					"type": "number"
				},
				"taxableSales": {
					"type": "number"
				},
				"taxablePurchases": {
					"type": "number"
				},
				"position": {
					"type": "string"
				}
			}
		},
		"dto.SuggestAccountRequest": {
			"type": "object",
			"properties": {
				"description": {
					"type": "string"
				},
				"merchant": {
					"type": "string"
				}
			}
		},
		"dto.SuggestionResponse": {
			"type": "object",
			"properties": {
				"accountID": {
					"type": "string"
				},
				"accountCode": {
					"type": "string"
				},
				"accountName": {
					"type": "string"
				},
				"confidence": {
					"type": "number"
				},
				"reason": {
					"type": "string"
				},
				"source": {
					"type": "string"
				}
			}
		},
		"dto.SuggestAccountResponse": {
			"type": "object",
			"properties": {
				"suggestion": {
					"$ref": "#/definitions/dto.SuggestionResponse"
				}
			}
		},
		"dto.LearnRuleRequest": {
			"type": "object",
			"properties": {
				"pattern": {
					"type": "string"
				},
				"accountID": {
					"type": "string"
				}
			}
		},
		"dto.ClassificationRuleResponse": {
			"type": "object",
			"properties": {
				"ruleID": {
					"type": "string"
				},
				"pattern": {
					"type": "string"
				},
				"accountID": {
					"type": "string"
				},
				"confidence": {
					"type": "number"
				},
				"timesUsed": {
					"type": "integer"
				},
				"updatedAt": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and JWT token.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:		  "1.0",
	Host:			 "localhost:8080",
	BasePath:		 "/api/v1",
	Schemes:		  []string{},
	Title:			"Ledger Core API",
	Description:	  "Multi-tenant double-entry ledger: chart of accounts, periods, journal posting, reports, VAT and account classification.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:		"{{",
	RightDelim:	   "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
