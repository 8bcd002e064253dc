package httpresp

import "github.com/gin-gonic/gin"

// Envelope padrão de lista, igual ao da API real — o cliente precisa saber
// desembrulhar {"data": ...} tanto quanto arrays nus.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
