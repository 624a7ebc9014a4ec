package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veriflow/kyc-backend/dto"
	"github.com/veriflow/kyc-backend/models"
	"github.com/veriflow/kyc-backend/pure_utils"
	"github.com/veriflow/kyc-backend/usecases"
)

type CaseInput struct {
	Id string `uri:"case_id" binding:"required"`
}

func handleCreateCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateCaseBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		priority, err := models.ValidateCasePriority(body.Priority)
		if presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewCaseUseCase()
		kycCase, err := usecase.CreateCaseFromUpload(ctx,
			dto.AdaptCustomerData(body.CustomerData), body.Files, priority)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, dto.AdaptCaseDto(kycCase))
	}
}

func handleStartAnalysis(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		usecase := uc.NewCaseUseCase()
		if err := usecase.StartAnalysis(ctx, caseInput.Id); presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "started",
			"case_id": caseInput.Id,
		})
	}
}

func handleGetCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		usecase := uc.NewCaseUseCase()
		kycCase, err := usecase.GetCase(ctx, caseInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptCaseDto(kycCase))
	}
}

func handleListCases(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var filters struct {
			Statuses []string `form:"status[]"`
			Limit    int      `form:"limit"`
		}
		if err := c.ShouldBind(&filters); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		usecase := uc.NewCaseUseCase()
		cases, err := usecase.ListCases(ctx, models.CaseFilters{
			Statuses: pure_utils.Map(filters.Statuses, models.CaseStatusFrom),
			Limit:    filters.Limit,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.CaseListDto{
			Cases: pure_utils.Map(cases, dto.AdaptCaseDto),
			Total: len(cases),
		})
	}
}
