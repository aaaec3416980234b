package dto

type Response struct {
	Code    int         `json:"Code"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data"`
}

type PageQueryDTO struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}
