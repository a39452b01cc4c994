package api

import (
	"net/http"

	resdto "storezee/internal/handler/dto/response"
	"storezee/internal/handler/httperr"
	"storezee/internal/pkg/errs"
	"storezee/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog   queries.CatalogQueries
	customers queries.CustomerQueries
}

func NewCatalogHandler(catalog queries.CatalogQueries, customers queries.CustomerQueries) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, customers: customers}
}

// @Summary List add-ons
// @Description List active add-ons that can be attached to a booking
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.AddonListResponse
// @Failure 500 {object} httperr.Response
// @Router /api/addons [get]
func (h *CatalogHandler) ListAddons(c *gin.Context) {
	views, err := h.catalog.ListAddons(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch addons", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAddonViews(views))
}

// @Summary List storage units
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.StorageUnitListResponse
// @Failure 500 {object} httperr.Response
// @Router /api/storage-units [get]
func (h *CatalogHandler) ListStorageUnits(c *gin.Context) {
	views, err := h.catalog.ListStorageUnits(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch storage units", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStorageUnitViews(views))
}

// @Summary Get user role
// @Description Look up a customer by phone number. An unknown phone answers 200 with success false.
// @Tags catalog
// @Produce json
// @Param phone path string true "Phone number"
// @Success 200 {object} resdto.UserRoleResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/user-role/{phone} [get]
func (h *CatalogHandler) GetUserRole(c *gin.Context) {
	view, err := h.customers.GetRoleByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrPhoneRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Phone is required", nil)
		case errs.Is(err, queries.ErrCustomerNotFound):
			c.JSON(http.StatusOK, resdto.UserNotFound())
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch user role", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerRoleView(view))
}
