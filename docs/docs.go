// Package docs регистрирует OpenAPI-описание API для http-swagger.
// Документ поддерживается вручную вместе с аннотациями обработчиков.
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
        "/api/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Регистрация пользователя",
                "parameters": [
                    {"description": "Имя, email и пароль", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/register.Request"}}
                ],
                "responses": {
                    "201": {"description": "Пользователь создан", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Пользователь уже существует или некорректный JSON", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "422": {"description": "Ошибка валидации", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Внутренняя ошибка сервера", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Авторизация пользователя",
                "parameters": [
                    {"description": "Учетные данные пользователя", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/login.Request"}}
                ],
                "responses": {
                    "200": {"description": "Успешная авторизация", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Неверные учетные данные или некорректный JSON", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "422": {"description": "Ошибка валидации", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Внутренняя ошибка сервера", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/auth/send-otp": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Отправка кода для сброса пароля",
                "parameters": [
                    {"description": "Email пользователя", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/sendotp.Request"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Пользователь не найден", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "429": {"description": "Код уже отправлен недавно", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/auth/verify-otp": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Сброс пароля по одноразовому коду",
                "parameters": [
                    {"description": "Email, код и новый пароль", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/verifyotp.Request"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Неверный или просроченный код", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "422": {"description": "Ошибка валидации", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/funding-requests": {
            "get": {
                "produces": ["application/json"],
                "tags": ["FundingRequests"],
                "summary": "Список заявок на финансирование",
                "responses": {
                    "200": {"description": "Все заявки", "schema": {"$ref": "#/definitions/response.Response"}},
                    "500": {"description": "Внутренняя ошибка сервера", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["FundingRequests"],
                "summary": "Создание заявки на финансирование",
                "parameters": [
                    {"description": "Данные заявки", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.FundingRequestInput"}}
                ],
                "responses": {
                    "201": {"description": "Созданная заявка", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Некорректный JSON", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "Нет токена", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "422": {"description": "Ошибка валидации", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Внутренняя ошибка сервера", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/funding-requests/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["FundingRequests"],
                "summary": "Заявка по ID",
                "parameters": [{"type": "string", "description": "ID заявки", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Заявка не найдена", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["FundingRequests"],
                "summary": "Обновление заявки",
                "parameters": [
                    {"type": "string", "description": "ID заявки", "name": "id", "in": "path", "required": true},
                    {"description": "Новые данные заявки", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.FundingRequestInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "403": {"description": "Нет прав на изменение", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Заявка не найдена", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["FundingRequests"],
                "summary": "Удаление заявки",
                "parameters": [{"type": "string", "description": "ID заявки", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "403": {"description": "Нет прав на удаление", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Заявка не найдена", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/my-funding-requests": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["FundingRequests"],
                "summary": "Заявки текущего пользователя",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/funding-options": {
            "get": {
                "produces": ["application/json"],
                "tags": ["FundingOptions"],
                "summary": "Альтернативные программы финансирования",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/financial-literacy": {
            "get": {
                "produces": ["application/json"],
                "tags": ["FinancialLiteracy"],
                "summary": "Поиск обучающих материалов",
                "parameters": [{"type": "string", "description": "Подстрока для поиска", "name": "search", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["FinancialLiteracy"],
                "summary": "Добавление обучающего материала",
                "parameters": [
                    {"description": "Материал", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.LiteracyResourceInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/financial-literacy/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["FinancialLiteracy"],
                "summary": "Изменение обучающего материала",
                "parameters": [
                    {"type": "string", "description": "ID материала", "name": "id", "in": "path", "required": true},
                    {"description": "Материал", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.LiteracyResourceInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["FinancialLiteracy"],
                "summary": "Удаление обучающего материала",
                "parameters": [{"type": "string", "description": "ID материала", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/credit-evaluation": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Credit"],
                "summary": "Кредитная оценка",
                "parameters": [
                    {"description": "Параметры оценки", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreditInput"}}
                ],
                "responses": {
                    "200": {"description": "creditScore и recommendation", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "login.Request": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "register.Request": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "email": {"type": "string", "maxLength": 254},
                "name": {"type": "string", "maxLength": 100},
                "password": {"type": "string", "minLength": 6, "description": "не более 72 байт"}
            }
        },
        "sendotp.Request": {
            "type": "object",
            "required": ["email"],
            "properties": {
                "email": {"type": "string"}
            }
        },
        "verifyotp.Request": {
            "type": "object",
            "required": ["email", "newPassword", "otpCode"],
            "properties": {
                "email": {"type": "string"},
                "newPassword": {"type": "string", "minLength": 6, "description": "не более 72 байт"},
                "otpCode": {"type": "string"}
            }
        },
        "models.CreditInput": {
            "type": "object",
            "required": ["amountRequested", "entrepreneurName", "purpose"],
            "properties": {
                "amountRequested": {"type": "number"},
                "businessAge": {"type": "number"},
                "businessRevenue": {"type": "number"},
                "collateralValue": {"type": "number"},
                "entrepreneurName": {"type": "string"},
                "purpose": {"type": "string"}
            }
        },
        "models.FundingRequestInput": {
            "type": "object",
            "required": ["amountRequested", "entrepreneurName", "purpose"],
            "properties": {
                "amountRequested": {"type": "number"},
                "contactAddress": {"type": "string", "maxLength": 500},
                "contactPhone": {"type": "string", "maxLength": 50},
                "description": {"type": "string", "maxLength": 5000},
                "entrepreneurName": {"type": "string", "maxLength": 200},
                "purpose": {"type": "string", "maxLength": 500}
            }
        },
        "models.LiteracyResourceInput": {
            "type": "object",
            "required": ["description", "title"],
            "properties": {
                "description": {"type": "string", "maxLength": 5000},
                "resourceType": {"type": "string", "enum": ["article", "video", "course"]},
                "title": {"type": "string", "maxLength": 300},
                "url": {"type": "string"}
            }
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "invalid request body"},
                "status": {"type": "string", "example": "Error"}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"type": "string"},
                "status": {"type": "string"}
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
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "FinHER API",
	Description:      "API платформы микрофинансирования для женщин-предпринимателей",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
