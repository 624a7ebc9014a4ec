package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veriflow/kyc-backend/dto"
	"github.com/veriflow/kyc-backend/usecases"
)

func handleProcessKycRequest(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.KycRequestBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		usecase := uc.NewKycRequestUseCase()
		kycCase, err := usecase.ProcessKycRequest(ctx,
			dto.AdaptCustomerData(body.CustomerData), body.DocumentTypes)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptCaseDto(kycCase))
	}
}
