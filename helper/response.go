package helper

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SuccessResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func HandleSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, SuccessResponse{
		Status:  statusCode,
		Message: message,
		Data:    data,
	})
}

type ErrorResponse struct {
	Error string `json:"error,omitempty"`
}

func HandleError(c *gin.Context, statusCode int, err error, message string) {
	log.Println(err)
	c.JSON(statusCode, ErrorResponse{
		Error: message,
	})
}

// ShowErrorPage is HandleError for server-rendered views: failures become a
// visible page state instead of propagating.
func ShowErrorPage(c *gin.Context, statusCode int, err error, message string) {
	if err != nil {
		log.Println(err)
	}
	c.HTML(statusCode, "error.html", gin.H{
		"Status":  statusCode,
		"Message": message,
		"IsLost":  statusCode == http.StatusNotFound,
	})
}
