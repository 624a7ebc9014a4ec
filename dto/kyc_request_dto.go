package dto

type KycRequestBody struct {
	CustomerData  CustomerDataDto `json:"customer_data" binding:"required"`
	DocumentTypes []string        `json:"document_types"`
}
