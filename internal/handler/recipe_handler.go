package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/hospitality_backoffice/internal/recipe"
	"github.com/locvowork/hospitality_backoffice/internal/service/serviceutils"
)

type RecipeHandler struct {
	calc *recipe.Calculator
}

func NewRecipeHandler(calc *recipe.Calculator) *RecipeHandler {
	return &RecipeHandler{calc: calc}
}

// ListCostsHandler returns the cost/margin breakdown for every recipe.
func (h *RecipeHandler) ListCostsHandler(c echo.Context) error {
	costs, err := h.calc.ListCosts(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, errorStatus(err), "Failed to compute recipe costs", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Recipe costs computed successfully", costs)
}

// CostHandler returns the cost/margin breakdown for one recipe.
func (h *RecipeHandler) CostHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid recipe ID", err)
	}

	cost, err := h.calc.CostByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, recipe.ErrRecipeNotFound) {
			return serviceutils.ResponseError(c, http.StatusNotFound, "Recipe not found", err)
		}
		return serviceutils.ResponseError(c, errorStatus(err), "Failed to compute recipe cost", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Recipe cost computed successfully", cost)
}
