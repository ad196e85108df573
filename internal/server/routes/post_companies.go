package routes

import (
	"errors"
	"net/http"

	"github.com/corplink/corplink/internal/server/middleware"
	"github.com/corplink/corplink/pkg/common"
	"github.com/corplink/corplink/pkg/logger"
	"github.com/corplink/corplink/pkg/store"

	"github.com/labstack/echo/v4"
)

// AddCompanyHandler creates a company together with its shareholders and
// director. People are upserted by name; the company name itself must be
// new.
func AddCompanyHandler(c echo.Context) error {
	type addCompanyBody struct {
		Name         string   `json:"name" validate:"required"`
		Shareholders []string `json:"shareholders" validate:"required,min=1,dive,required"`
		Director     string   `json:"director" validate:"required"`
	}

	type addCompanyResponse struct {
		Message string          `json:"message"`
		Company *common.Company `json:"company,omitempty"`
	}

	data := new(addCompanyBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, addCompanyResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, addCompanyResponse{
			Message: "Invalid request body",
		})
	}

	ctx := c.Request().Context()
	st := c.(*middleware.AppContext).App.Store

	companyID, err := st.CreateCompany(ctx, data.Name)
	if errors.Is(err, store.ErrDuplicateName) {
		return c.JSON(http.StatusConflict, addCompanyResponse{
			Message: "Company already exists",
		})
	}
	if errors.Is(err, store.ErrEmptyName) {
		return c.JSON(http.StatusBadRequest, addCompanyResponse{
			Message: "Company name must not be empty",
		})
	}
	if err != nil {
		logger.Error("Failed to create company", "err", err)
		return c.JSON(http.StatusInternalServerError, addCompanyResponse{
			Message: "Internal server error",
		})
	}

	link := func(name string, role common.Role) error {
		personID, err := st.UpsertPerson(ctx, name)
		if err != nil {
			return err
		}
		return st.AddRelation(ctx, personID, companyID, role)
	}

	for _, shareholder := range data.Shareholders {
		if err := link(shareholder, common.RoleShareholder); err != nil {
			logger.Error("Failed to link shareholder", "err", err)
			return c.JSON(http.StatusInternalServerError, addCompanyResponse{
				Message: "Internal server error",
			})
		}
	}
	if err := link(data.Director, common.RoleDirector); err != nil {
		logger.Error("Failed to link director", "err", err)
		return c.JSON(http.StatusInternalServerError, addCompanyResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusCreated, addCompanyResponse{
		Message: "Company added",
		Company: &common.Company{ID: companyID, Name: common.NormalizeName(data.Name)},
	})
}
