package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noirfolio/noirfolio/backend/go-services/internal/portfolio"
	"github.com/noirfolio/noirfolio/backend/go-services/internal/portfolio/service"
	"github.com/noirfolio/noirfolio/backend/go-services/internal/submission"
)

// RegisterPortfolioRoutes wires the public API:
//   - GET  /api/portfolio  -> current content (public by design, no auth)
//   - POST /api/portfolio  -> replace content wholesale
//   - POST /api/contact    -> store a message, then notify the owner
//   - POST /api/booking    -> store a booking, then notify the owner
func RegisterPortfolioRoutes(r *gin.Engine, store *service.Store, subs *submission.Service) {
	r.GET("/api/portfolio", func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Content(c.Request.Context()))
	})

	r.POST("/api/portfolio", func(c *gin.Context) {
		var content portfolio.Content
		if err := c.ShouldBindJSON(&content); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := store.ReplaceContent(c.Request.Context(), content); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save portfolio data"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Success"})
	})

	r.POST("/api/contact", func(c *gin.Context) {
		var req struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Message string `json:"message"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if _, err := subs.SubmitMessage(c.Request.Context(), req.Name, req.Email, req.Message); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store message"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Message stored"})
	})

	r.POST("/api/booking", func(c *gin.Context) {
		var req struct {
			Type  string `json:"type"`
			Title string `json:"title"`
			Price string `json:"price"`
			Name  string `json:"name"`
			Email string `json:"email"`
			Date  string `json:"date"`
			Notes string `json:"notes"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if _, err := subs.SubmitBooking(c.Request.Context(),
			req.Type, req.Title, req.Price, req.Name, req.Email, req.Date, req.Notes); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store booking"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Booking logged"})
	})
}
