package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the portfolio API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>noirfolio — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the public portfolio API.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "noirfolio", "version": "v0.1.0" },
  "paths": {
    "/api/portfolio": {
      "get": { "summary": "Fetch the portfolio content", "responses": { "200": { "description": "content object" } } },
      "post": {
        "summary": "Replace the portfolio content wholesale",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object"} } } },
        "responses": { "200": { "description": "saved" }, "500": { "description": "nothing was saved" } }
      }
    },
    "/api/contact": {
      "post": {
        "summary": "Submit a contact message (stored, then owner notified)",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"name":{"type":"string"},"email":{"type":"string"},"message":{"type":"string"}}}}}},
        "responses": { "200": { "description": "message stored" }, "500": { "description": "nothing was recorded" } }
      }
    },
    "/api/booking": {
      "post": {
        "summary": "Submit a service/consultation booking (stored, then owner notified)",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"type":{"type":"string"},"title":{"type":"string"},"price":{"type":"string"},"name":{"type":"string"},"email":{"type":"string"},"date":{"type":"string"},"notes":{"type":"string"}}}}}},
        "responses": { "200": { "description": "booking logged" }, "500": { "description": "nothing was recorded" } }
      }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
