package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const MessageSuccessful = "successful"

type Envelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope[any]{Data: data, Message: MessageSuccessful})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Envelope[any]{Data: data, Message: MessageSuccessful})
}

// List never serializes a nil slice as null.
func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, Envelope[[]T]{Data: data, Message: MessageSuccessful})
}
