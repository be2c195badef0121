package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hpd-transportes/wash-registry/models"
	"github.com/hpd-transportes/wash-registry/services"
)

type CompanyController struct {
	References *services.ReferenceService
}

func NewCompanyController(refs *services.ReferenceService) *CompanyController {
	return &CompanyController{References: refs}
}

// CreateCompany
func (cc *CompanyController) CreateCompany(c *gin.Context) {
	var body models.ReferenceInput
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err)
		return
	}

	company, err := cc.References.AddCompany(c.Request.Context(), body.Name)
	if err != nil {
		respondServiceError(c, "CreateCompany", err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// GetAllCompanies
func (cc *CompanyController) GetAllCompanies(c *gin.Context) {
	companies, err := cc.References.ListCompanies(c.Request.Context())
	if err != nil {
		respondServiceError(c, "GetAllCompanies", err)
		return
	}
	c.JSON(http.StatusOK, companies)
}
