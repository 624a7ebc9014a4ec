package dto

import (
	"github.com/guregu/null/v5"

	"github.com/veriflow/kyc-backend/models"
	"github.com/veriflow/kyc-backend/pure_utils"
)

type CustomerDataDto struct {
	FullName       string         `json:"full_name" binding:"required"`
	DateOfBirth    string         `json:"date_of_birth,omitempty"`
	Nationality    string         `json:"nationality,omitempty"`
	Citizenship    string         `json:"citizenship,omitempty"`
	Address        string         `json:"address,omitempty"`
	Phone          string         `json:"phone,omitempty"`
	Email          string         `json:"email,omitempty"`
	Occupation     string         `json:"occupation,omitempty"`
	Employer       string         `json:"employer,omitempty"`
	NetWorth       null.Float     `json:"net_worth,omitzero"`
	SourceOfWealth string         `json:"source_of_wealth,omitempty"`
	IsPep          bool           `json:"is_pep"`
	AdditionalInfo map[string]any `json:"additional_info,omitempty"`
}

func AdaptCustomerData(dto CustomerDataDto) models.CustomerData {
	customerData := models.CustomerData{
		FullName:       dto.FullName,
		DateOfBirth:    dto.DateOfBirth,
		Nationality:    dto.Nationality,
		Citizenship:    dto.Citizenship,
		Address:        dto.Address,
		Phone:          dto.Phone,
		Email:          dto.Email,
		Occupation:     dto.Occupation,
		Employer:       dto.Employer,
		SourceOfWealth: dto.SourceOfWealth,
		IsPep:          dto.IsPep,
		AdditionalInfo: dto.AdditionalInfo,
	}
	if dto.NetWorth.Valid {
		customerData.NetWorth = pure_utils.Ptr(dto.NetWorth.Float64)
	}
	return customerData
}

func NewCustomerDataDto(customerData models.CustomerData) CustomerDataDto {
	return CustomerDataDto{
		FullName:       customerData.FullName,
		DateOfBirth:    customerData.DateOfBirth,
		Nationality:    customerData.Nationality,
		Citizenship:    customerData.Citizenship,
		Address:        customerData.Address,
		Phone:          customerData.Phone,
		Email:          customerData.Email,
		Occupation:     customerData.Occupation,
		Employer:       customerData.Employer,
		NetWorth:       null.FloatFromPtr(customerData.NetWorth),
		SourceOfWealth: customerData.SourceOfWealth,
		IsPep:          customerData.IsPep,
		AdditionalInfo: customerData.AdditionalInfo,
	}
}
