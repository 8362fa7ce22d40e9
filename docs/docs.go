// Package docs registers the Swagger document served at /swagger/index.html.
// It mirrors the handler annotations in internal/controller; running
// `swag init -g cmd/main.go` replaces it with the generated equivalent.
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
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/categories": {
            "get": {
                "description": "All categories as an id to type map",
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CategoriesResponse"}},
                    "422": {"description": "Storage failure", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/categories/{id}/questions": {
            "get": {
                "description": "Every question filed under the category, unpaginated",
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List questions in a category",
                "parameters": [
                    {"type": "integer", "description": "Category ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CategoryQuestionsResponse"}},
                    "404": {"description": "Category not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/questions": {
            "get": {
                "description": "Page of questions with the total count and the category map. A page past the end is 404.",
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "List questions, 10 per page",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "1-indexed page", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuestionPageResponse"}},
                    "400": {"description": "Non-numeric page", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Page out of range", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "description": "All four fields are required. The new id is not returned.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Create a question",
                "parameters": [
                    {"description": "Question data", "name": "question", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateQuestionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AckResponse"}},
                    "422": {"description": "Missing or invalid field, or insert failure", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/questions/search_query": {
            "post": {
                "description": "Case-insensitive substring match on the question text. Failures yield an empty result.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Search questions",
                "parameters": [
                    {"description": "Search term", "name": "search", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SearchQuestionsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuestionListResponse"}}
                }
            }
        },
        "/questions/{id}": {
            "delete": {
                "description": "Permanently removes the question and echoes its id",
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Delete a question",
                "parameters": [
                    {"type": "integer", "description": "Question ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DeleteQuestionResponse"}},
                    "404": {"description": "Question not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Delete failed", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/quizzes": {
            "post": {
                "description": "Random question from the category (0 for all) that is not in previous_questions. question is null when none is left.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Next quiz question",
                "parameters": [
                    {"description": "Seen question ids and quiz category", "name": "quiz", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.QuizRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuizResponse"}},
                    "400": {"description": "Malformed quiz request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.AckResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean", "example": true}}
        },
        "dto.CategoriesResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "object", "additionalProperties": {"type": "string"}},
                "success": {"type": "boolean", "example": true}
            }
        },
        "dto.CategoryQuestionsResponse": {
            "type": "object",
            "properties": {
                "currentCategory": {"type": "string", "example": "Science"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/dto.QuestionDTO"}},
                "success": {"type": "boolean", "example": true},
                "totalQuestions": {"type": "integer", "example": 1}
            }
        },
        "dto.CreateQuestionRequest": {
            "type": "object",
            "required": ["answer", "question"],
            "properties": {
                "answer": {"type": "string", "example": "Jupiter"},
                "category": {"type": "integer", "example": 1},
                "difficulty": {"type": "integer", "example": 2},
                "question": {"type": "string", "example": "What is the largest planet?"}
            }
        },
        "dto.DeleteQuestionResponse": {
            "type": "object",
            "properties": {
                "deleted": {"type": "integer", "example": 10},
                "success": {"type": "boolean", "example": true}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "integer", "example": 404},
                "message": {"type": "string", "example": "resource not found"},
                "success": {"type": "boolean", "example": false}
            }
        },
        "dto.QuestionDTO": {
            "type": "object",
            "properties": {
                "answer": {"type": "string", "example": "Jupiter"},
                "category": {"type": "integer", "example": 1},
                "difficulty": {"type": "integer", "example": 2},
                "id": {"type": "integer", "example": 1},
                "question": {"type": "string", "example": "What is the largest planet?"}
            }
        },
        "dto.QuestionListResponse": {
            "type": "object",
            "properties": {
                "questions": {"type": "array", "items": {"$ref": "#/definitions/dto.QuestionDTO"}},
                "success": {"type": "boolean", "example": true},
                "totalQuestions": {"type": "integer", "example": 2}
            }
        },
        "dto.QuestionPageResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "object", "additionalProperties": {"type": "string"}},
                "currentCategory": {"type": "object", "additionalProperties": {"type": "string"}},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/dto.QuestionDTO"}},
                "success": {"type": "boolean", "example": true},
                "totalQuestions": {"type": "integer", "example": 19}
            }
        },
        "dto.QuizCategory": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 0},
                "type": {"type": "string", "example": "Science"}
            }
        },
        "dto.QuizRequest": {
            "type": "object",
            "required": ["quiz_category"],
            "properties": {
                "previous_questions": {"type": "array", "items": {"type": "integer"}},
                "quiz_category": {"$ref": "#/definitions/dto.QuizCategory"}
            }
        },
        "dto.QuizResponse": {
            "type": "object",
            "properties": {
                "question": {"$ref": "#/definitions/dto.QuestionDTO"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "dto.SearchQuestionsRequest": {
            "type": "object",
            "properties": {"searchTerm": {"type": "string", "example": "title"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Trivia API",
	Description:      "Categories, questions and quiz play for the trivia web client.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
